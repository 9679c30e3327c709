package farm

import "github.com/vovakirdan/farmhand/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StatePaused       GameStateType = "paused"
	StateWin          GameStateType = "win"
)

// MaxVisibleDeposits is how many deposits the farm row shows.
const MaxVisibleDeposits = 12

// ItemView is an item as seen by renderers.
type ItemView struct {
	ID   ItemID
	Type string
	X, Y float64
}

// FarmerView is the farmer as seen by renderers.
type FarmerView struct {
	X, Y     float64
	Carrying string // Empty unless carrying
	Target   ItemID
	Status   FarmerStatus
}

// ParticleView is a particle as seen by renderers.
type ParticleView struct {
	ID      uint64
	Kind    string
	Glyph   string
	X, Y    float64
	Age     float64
	MaxLife float64
}

// TextView is a floating text as seen by renderers.
type TextView struct {
	ID   uint64
	Text string
	X, Y float64
	Age  float64
	TTL  float64
}

// Snapshot is an immutable copy of everything a renderer needs for a frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick    uint64
	Mode    string
	ScreenW int
	ScreenH int

	Fence  core.Rect
	Zone   core.Rect
	Bounds Bounds

	FarmerGlyph string
	ZoneGlyph   string

	Deposits  []string
	Items     []ItemView
	Farmer    FarmerView
	Particles []ParticleView
	Texts     []TextView

	Score      int
	Level      int // 1-indexed for display
	LevelName  string
	LevelEmoji string
	Bonus      int
	Elapsed    float64
	TargetTime float64
	State      GameStateType
}

// VisibleDeposits returns the most recent deposits that fit the farm row.
func (s Snapshot) VisibleDeposits() []string {
	if len(s.Deposits) <= MaxVisibleDeposits {
		return s.Deposits
	}
	return s.Deposits[len(s.Deposits)-MaxVisibleDeposits:]
}

// Remaining returns the number of items not yet deposited.
func (s Snapshot) Remaining() int {
	n := len(s.Items)
	if s.Farmer.Carrying != "" {
		n++
	}
	return n
}

// Snapshot returns a deep copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	g.ensureConfig()

	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	case g.transitioning:
		state = StateLevelCleared
	}

	level := g.levels.Level(g.levelIndex)
	elapsed := g.clock - g.levelStart

	farmer := FarmerView{
		X:      g.farmer.Pos.X,
		Y:      g.farmer.Pos.Y,
		Target: g.farmer.TargetID,
		Status: g.farmer.Status(),
	}
	if g.farmer.Carrying != nil {
		farmer.Carrying = g.farmer.Carrying.Type
	}

	particles := make([]ParticleView, len(g.particles))
	for i, p := range g.particles {
		particles[i] = ParticleView{
			ID:      p.ID,
			Kind:    p.Kind,
			Glyph:   p.Glyph,
			X:       p.Pos.X,
			Y:       p.Pos.Y,
			Age:     p.Age,
			MaxLife: p.MaxLife,
		}
	}

	texts := make([]TextView, len(g.texts))
	for i, t := range g.texts {
		texts[i] = TextView{
			ID:   t.ID,
			Text: t.Text,
			X:    t.Pos.X,
			Y:    t.Pos.Y,
			Age:  g.clock - t.Born,
			TTL:  t.TTL,
		}
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		ScreenW:     g.screenW,
		ScreenH:     g.screenH,
		Fence:       g.arena.Fence,
		Zone:        g.arena.Zone,
		Bounds:      g.arena.Bounds,
		FarmerGlyph: g.cfg.Farmer.Glyph,
		ZoneGlyph:   g.cfg.Zone.Glyph,
		Deposits:    append([]string(nil), g.deposits...),
		Items:       g.itemViews(),
		Farmer:      farmer,
		Particles:   particles,
		Texts:       texts,
		Score:       g.score,
		Level:       level.Number(),
		LevelName:   level.Name,
		LevelEmoji:  level.Emoji,
		Bonus:       g.bonus,
		Elapsed:     elapsed,
		TargetTime:  level.TargetTime,
		State:       state,
	}
}

func (g *Game) itemViews() []ItemView {
	views := make([]ItemView, len(g.items))
	for i, it := range g.items {
		views[i] = ItemView{ID: it.ID, Type: it.Type, X: it.Pos.X, Y: it.Pos.Y}
	}
	return views
}
