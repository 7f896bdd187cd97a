package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongduel/internal/audio"
	"github.com/diegok/pongduel/internal/client"
	"github.com/diegok/pongduel/internal/config"
	"github.com/diegok/pongduel/internal/game"
	"github.com/diegok/pongduel/internal/server"
	"github.com/diegok/pongduel/internal/ui"
)

// renderInterval caps redraws at ~60fps whatever the tick rate
const renderInterval = 16 * time.Millisecond

// App is the main application controller that manages the match lifecycle.
type App struct {
	cfg       *config.Config
	log       *slog.Logger
	logCloser io.Closer
	screen    *ui.Screen
	renderer  *ui.Renderer
	client    *client.Client
	hub       *server.Hub
	muted     bool

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes logging, audio and the screen, then plays or watches a match.
func (a *App) Run() error {
	logger, closer, err := openLogger(a.cfg.LogFile)
	if err != nil {
		return err
	}
	a.log = logger
	a.logCloser = closer

	// The game works without sound
	a.muted = a.cfg.Mute
	if !a.muted {
		if err := audio.Init(); err != nil {
			a.log.Warn("audio unavailable", "error", err)
			a.muted = true
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if _, ok := <-a.sigChan; ok {
			close(a.quit)
		}
	}()

	var runErr error
	if a.cfg.IsWatcher() {
		runErr = a.runWatch(a.cfg.WatchURL)
	} else {
		runErr = a.runLocal()
	}

	if runErr != nil {
		a.log.Error("exiting", "error", runErr)
	}
	a.cleanup()
	return runErr
}

// sound returns the sound player, or nil when muted
func (a *App) sound() game.SoundPlayer {
	if a.muted {
		return nil
	}
	return audio.NewSpeaker(a.log)
}

// pollEvents forwards screen events until quit is closed.
func (a *App) pollEvents() <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()
	return events
}

// handleEvent processes keyboard and other events.
// Keys bound to a player action take precedence over quit keys.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event, keys *ui.KeyState) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if keys != nil && keys.Press(ev.Key(), ev.Rune()) {
			return false
		}
		return ui.IsQuitKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		a.screen.Clear()
	}
	return false
}

// showError renders err and waits for a key press or quit.
func (a *App) showError(err error, events <-chan tcell.Event) {
	a.renderer.RenderError(err.Error())
	for {
		select {
		case <-a.quit:
			return
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return
			}
		}
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.client != nil {
		a.client.Close()
	}

	if a.hub != nil {
		a.hub.Stop()
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
		close(a.sigChan)
	}

	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

// openLogger returns a text logger appending to path, or a discarding logger
// when path is empty.
func openLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}
