package game

// Arena geometry. The origin is the arena center and y grows upward.
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0

	PaddleWidth  = 10.0
	PaddleHeight = 60.0
	PaddleSpeed  = 300.0
	PaddleX      = 300.0 // Distance of each paddle from the center line

	BallSize         = 10.0
	InitialBallSpeed = 200.0
	SpeedIncrement   = 50.0 // Horizontal speed gained on every paddle hit
	BounceFactor     = 0.5  // Share of paddle speed transferred to the ball on a moving hit

	GoalWidth = 100.0

	DockOffsetX = 10.0
	DockOffsetY = 2.0
)

// Arena markings
const (
	DashWidth   = 5.0
	DashHeight  = 20.0
	DashSpacing = 20.0
	RailHeight  = 2.0
)

// Offscreen is where a freshly spawned ball waits until it docks.
var Offscreen = Vec2{X: -1000, Y: -1000}

// Player identifies one of the two sides.
type Player int

const (
	Player1 Player = iota // Left side
	Player2               // Right side
)

// Players lists both sides in enumeration order.
var Players = [2]Player{Player1, Player2}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Away returns the horizontal sign pointing from this player's side toward the opponent.
func (p Player) Away() float64 {
	if p == Player1 {
		return 1
	}
	return -1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "unknown"
}

// Vec2 is a 2D point or vector in arena units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Rect is an axis-aligned box described by its center and size.
type Rect struct {
	Center Vec2
	W, H   float64
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Center.X+r.W/2 > o.Center.X-o.W/2 &&
		r.Center.X-r.W/2 < o.Center.X+o.W/2 &&
		r.Center.Y+r.H/2 > o.Center.Y-o.H/2 &&
		r.Center.Y-r.H/2 < o.Center.Y+o.H/2
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Marking is a static court line. It never collides with anything.
type Marking struct {
	Visual Visual
	Pos    Vec2
}

// Markings returns the dashed center line followed by the top and bottom rails.
func Markings() []Marking {
	var out []Marking
	dash := Visual{Kind: VisualMarking, W: DashWidth, H: DashHeight}
	for y := -ArenaHeight/2 + DashHeight; y < ArenaHeight/2; y += DashHeight + DashSpacing {
		out = append(out, Marking{Visual: dash, Pos: Vec2{Y: y}})
	}

	rail := Visual{Kind: VisualMarking, W: ArenaWidth * 3, H: RailHeight}
	out = append(out,
		Marking{Visual: rail, Pos: Vec2{X: -ArenaWidth / 2, Y: ArenaHeight / 2}},
		Marking{Visual: rail, Pos: Vec2{X: -ArenaWidth / 2, Y: -ArenaHeight / 2}},
	)
	return out
}
