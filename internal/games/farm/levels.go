package farm

import "github.com/vovakirdan/farmhand/internal/config"

// Level is the resolved configuration for one level index.
type Level struct {
	Index       int // 0-based, unbounded
	Name        string
	Emoji       string
	TargetTime  float64 // Seconds
	WanderSpeed float64 // Cells per second
	Wandering   bool    // Items move on their own
}

// Number returns the 1-based level number for display.
func (l Level) Number() int {
	return l.Index + 1
}

// SpawnRange is an inclusive item count range.
type SpawnRange struct {
	Min, Max int
}

// LevelTable resolves level indices against the configured level list.
// Indices past the end cycle through the table while spawn ranges keep
// growing, so every lap is harder than the last.
type LevelTable struct {
	cfg config.FarmConfig
}

// NewLevelTable creates a table backed by cfg.
func NewLevelTable(cfg config.FarmConfig) *LevelTable {
	return &LevelTable{cfg: cfg}
}

// Count returns the number of distinct levels in the table.
func (t *LevelTable) Count() int {
	return len(t.cfg.Levels)
}

// Level returns the level at the given index.
func (t *LevelTable) Level(index int) Level {
	index = max(index, 0)
	if t.Count() == 0 {
		return Level{Index: index, Name: "Empty Field", TargetTime: 1}
	}

	row := t.cfg.Levels[index%t.Count()]
	scaling := t.cfg.Difficulty.Scaling
	wander := row.WanderSpeed * scaling.Wander()

	return Level{
		Index:       index,
		Name:        row.Name,
		Emoji:       row.Emoji,
		TargetTime:  row.TargetTime * scaling.TargetTime(),
		WanderSpeed: wander,
		Wandering:   wander > 0 && t.cfg.IsAnimal(row.Emoji),
	}
}

// SpawnRange returns the item count range for the given index.
// With progression disabled every level uses the first level's range.
func (t *LevelTable) SpawnRange(index int) SpawnRange {
	index = max(index, 0)
	if !t.cfg.Difficulty.Enabled {
		index = 0
	}
	s := t.cfg.Spawn
	return SpawnRange{
		Min: s.BaseMin + index*s.MinStep,
		Max: s.BaseMax + index*s.MaxStep,
	}
}

// Names returns the names of all table levels.
func (t *LevelTable) Names() []string {
	names := make([]string, t.Count())
	for i, l := range t.cfg.Levels {
		names[i] = l.Name
	}
	return names
}
