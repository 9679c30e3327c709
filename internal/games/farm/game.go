// Package farm implements the farm collection game: a farmer walks to items
// the player clicks, carries them back to the farm zone and clears levels
// against a target time.
package farm

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/farmhand/internal/config"
	"github.com/vovakirdan/farmhand/internal/core"
	"github.com/vovakirdan/farmhand/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeEndless  Mode = "endless"  // Level table cycles forever
	ModeCampaign Mode = "campaign" // Won after the last table level
)

// Timer kinds on the game scheduler.
const (
	timerAdvanceLevel = iota + 1
	timerExpireText
)

// Game implements the farm game. All state is owned here and advanced by
// Step on a fixed simulation clock.
type Game struct {
	mode      Mode
	cfg       config.FarmConfig
	cfgLoaded bool
	levels    *LevelTable
	rng       *rand.Rand
	log       *log.Logger
	timers    *core.Scheduler
	observers map[int]func(Snapshot)
	nextObs   int

	tick  uint64
	clock float64 // Simulation seconds since Reset
	dt    float64
	rate  int

	screenW int
	screenH int
	arena   Arena

	nextID uint64

	levelIndex    int
	levelStart    float64
	populated     bool
	transitioning bool
	won           bool
	paused        bool

	score     int
	bonus     int
	farmer    Farmer
	items     []Item
	deposits  []string
	particles []Particle
	texts     []FloatingText
}

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the 1-based starting level. 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates an endless mode farm game.
func New() *Game {
	return &Game{mode: ModeEndless}
}

// NewCampaign creates a campaign mode farm game.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.FarmConfig) *Game {
	g := &Game{mode: mode}
	g.setConfig(cfg)
	return g
}

func init() {
	registry.Register("farm", func() registry.Game {
		return New()
	})
	registry.Register("farm_campaign", func() registry.Game {
		return NewCampaign()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeCampaign {
		return "farm_campaign"
	}
	return "farm"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "Farmhand (Campaign)"
	}
	return "Farmhand"
}

// SetLogger sets the logger for gameplay events. A nil logger is ignored.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.log = l.With("game", g.ID())
	}
}

func (g *Game) logger() *log.Logger {
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	return g.log
}

// Config returns the active configuration.
func (g *Game) Config() config.FarmConfig {
	g.ensureConfig()
	return g.cfg
}

func (g *Game) ensureConfig() {
	if g.cfgLoaded {
		return
	}
	cfg, err := config.LoadFarm(configPath)
	if err != nil {
		g.logger().Warn("falling back to default config", "err", err)
		cfg = config.DefaultFarmConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFarmPreset(&cfg, config.ParsePreset(difficultyPreset))
	}
	g.setConfig(cfg)
}

func (g *Game) setConfig(cfg config.FarmConfig) {
	g.cfg = cfg
	g.levels = NewLevelTable(cfg)
	g.cfgLoaded = true
}

// Levels returns the level table.
func (g *Game) Levels() *LevelTable {
	g.ensureConfig()
	return g.levels
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ensureConfig()

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.timers == nil {
		g.timers = core.NewScheduler()
	}
	g.timers.Clear()

	g.tick = 0
	g.clock = 0
	g.dt = cfg.TickSeconds()
	g.rate = cfg.TickRate
	g.nextID = 0
	g.score = 0
	g.bonus = 0
	g.won = false
	g.paused = false
	g.transitioning = false
	g.populated = false
	g.particles = nil
	g.texts = nil

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.arena = ComputeArena(cfg.ScreenW, cfg.ScreenH, g.cfg.Arena, g.cfg.Zone)
	g.farmer = Farmer{Pos: g.arena.Bounds.Center()}

	g.levelIndex = 0
	if selectedStartLevel > 0 {
		start := selectedStartLevel - 1
		if g.mode == ModeCampaign {
			start = min(start, g.levels.Count()-1)
		}
		g.levelIndex = max(start, 0)
		selectedStartLevel = 0 // Reset after use
	}

	g.startLevel()
}

// Resize adapts the arena to a new viewport, keeping all game state.
// Items and the farmer are clamped into the new bounds.
func (g *Game) Resize(w, h int) {
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h
	g.arena = ComputeArena(w, h, g.cfg.Arena, g.cfg.Zone)

	inner := g.arena.Inner()
	for i := range g.items {
		g.items[i].Pos = inner.Clamp(g.items[i].Pos)
	}
	g.farmer.Pos = g.arena.Bounds.Clamp(g.farmer.Pos)
}

// Teardown cancels all pending timers. The game must be Reset before reuse.
func (g *Game) Teardown() {
	if g.timers != nil {
		g.timers.Clear()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.rate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.won {
		return core.StepResult{State: g.State()}
	}

	if len(input.Clicks) > 0 {
		views := g.itemViews()
		for _, c := range input.Clicks {
			id, ok := HitTest(views, c.X, c.Y)
			if !ok {
				g.logger().Debug("click missed", "x", c.X, "y", c.Y)
				continue
			}
			g.SelectItem(id)
		}
	}

	g.advance(g.dt)
	g.notify()

	return core.StepResult{State: g.State()}
}

// advance runs one frame of simulation.
func (g *Game) advance(dt float64) {
	g.clock += dt
	g.updateWanderers(dt)
	g.updateFarmer(dt)
	g.updateParticles(dt)
	g.fireTimers()
	g.checkLevelComplete()
}

// SelectItem directs the farmer toward the item with the given ID.
// Selecting while carrying drops the payload first. Unknown IDs are ignored.
func (g *Game) SelectItem(id ItemID) bool {
	if g.findItem(id) < 0 {
		g.logger().Debug("ignored selection of missing item", "id", id)
		return false
	}
	if g.farmer.Carrying != nil {
		g.dropCarried()
	}
	g.farmer.TargetID = id
	return true
}

// findItem returns the index of the field item with the given ID, or -1.
func (g *Game) findItem(id ItemID) int {
	if id == NoItem {
		return -1
	}
	return slices.IndexFunc(g.items, func(it Item) bool { return it.ID == id })
}

func (g *Game) newID() uint64 {
	g.nextID++
	return g.nextID
}

// fireTimers runs every timer due at the current simulation time.
func (g *Game) fireTimers() {
	for _, t := range g.timers.Due(g.clock) {
		switch t.Kind {
		case timerAdvanceLevel:
			g.advanceLevel()
		case timerExpireText:
			g.removeText(t.Ref)
		}
	}
}

// Subscribe registers fn to receive a snapshot after every simulated frame.
// The returned function removes the subscription.
func (g *Game) Subscribe(fn func(Snapshot)) func() {
	if g.observers == nil {
		g.observers = make(map[int]func(Snapshot))
	}
	g.nextObs++
	key := g.nextObs
	g.observers[key] = fn
	return func() { delete(g.observers, key) }
}

func (g *Game) notify() {
	if len(g.observers) == 0 {
		return
	}
	snap := g.Snapshot()
	keys := make([]int, 0, len(g.observers))
	for k := range g.observers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		g.observers[k](snap)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		GameOver: g.won,
		Paused:   g.paused,
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}
