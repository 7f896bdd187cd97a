package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongduel/internal/config"
	"github.com/diegok/pongduel/internal/game"
)

// Binding is a single key, either a special key or a rune
type Binding struct {
	Key  tcell.Key
	Rune rune
}

var namedKeys = map[string]Binding{
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"enter": {Key: tcell.KeyEnter},
	"tab":   {Key: tcell.KeyTab},
	"space": {Key: tcell.KeyRune, Rune: ' '},
}

// ParseKey converts a key name from the config file into a Binding.
// Single characters match case-insensitively.
func ParseKey(name string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if b, ok := namedKeys[name]; ok {
		return b, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Binding{Key: tcell.KeyRune, Rune: r}, nil
	}
	return Binding{}, fmt.Errorf("unknown key %q", name)
}

// Matches reports whether a key event hits this binding
func (b Binding) Matches(key tcell.Key, r rune) bool {
	if key != b.Key {
		return false
	}
	if key != tcell.KeyRune {
		return true
	}
	return unicode.ToLower(r) == b.Rune
}

type action int

const (
	actionUp action = iota
	actionDown
	actionLaunch
)

// KeyState turns key presses into per-player input for the simulation.
// Terminals only report presses, so a movement key counts as held for
// a short window after its last press or auto-repeat.
type KeyState struct {
	binds  [2][3]Binding
	held   [2][2]time.Time // Last press of up/down
	launch [2]bool         // Latched until read
	hold   time.Duration
	now    func() time.Time
}

// NewKeyState builds the input state from configured key names
func NewKeyState(keys config.Keys, hold time.Duration) (*KeyState, error) {
	names := [2][3]string{
		{keys.P1Up, keys.P1Down, keys.P1Launch},
		{keys.P2Up, keys.P2Down, keys.P2Launch},
	}

	ks := &KeyState{hold: hold, now: time.Now}
	for p := range names {
		for a, name := range names[p] {
			b, err := ParseKey(name)
			if err != nil {
				return nil, err
			}
			ks.binds[p][a] = b
		}
	}
	return ks, nil
}

// Press records a key event. It returns false when no player action is bound to it.
func (k *KeyState) Press(key tcell.Key, r rune) bool {
	now := k.now()
	for p := range k.binds {
		for a, b := range k.binds[p] {
			if !b.Matches(key, r) {
				continue
			}
			switch action(a) {
			case actionUp:
				k.held[p][actionUp] = now
				k.held[p][actionDown] = time.Time{}
			case actionDown:
				k.held[p][actionDown] = now
				k.held[p][actionUp] = time.Time{}
			case actionLaunch:
				k.launch[p] = true
			}
			return true
		}
	}
	return false
}

func (k *KeyState) Direction(p game.Player) game.Direction {
	now := k.now()
	return game.Direction{
		Up:   k.isHeld(k.held[p][actionUp], now),
		Down: k.isHeld(k.held[p][actionDown], now),
	}
}

func (k *KeyState) isHeld(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) < k.hold
}

// Launch reports and clears a pending launch press
func (k *KeyState) Launch(p game.Player) bool {
	fired := k.launch[p]
	k.launch[p] = false
	return fired
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	return key == tcell.KeyRune && (r == 'q' || r == 'Q')
}
