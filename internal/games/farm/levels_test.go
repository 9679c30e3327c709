package farm

import (
	"testing"

	"github.com/vovakirdan/farmhand/internal/config"
)

func TestSpawnRangeMonotonic(t *testing.T) {
	table := NewLevelTable(config.DefaultFarmConfig())

	prev := table.SpawnRange(0)
	if prev.Min > prev.Max {
		t.Fatalf("index 0: min %d > max %d", prev.Min, prev.Max)
	}
	for i := 1; i < 50; i++ {
		r := table.SpawnRange(i)
		if r.Min > r.Max {
			t.Errorf("index %d: min %d > max %d", i, r.Min, r.Max)
		}
		if r.Min <= prev.Min || r.Max <= prev.Max {
			t.Errorf("index %d: range %+v does not grow from %+v", i, r, prev)
		}
		prev = r
	}
}

func TestSpawnRangeFormula(t *testing.T) {
	table := NewLevelTable(config.DefaultFarmConfig())

	tests := []struct {
		index    int
		min, max int
	}{
		{0, 3, 7},
		{1, 5, 11},
		{3, 9, 19},
		{6, 15, 31}, // Past the end of the table
	}
	for _, tt := range tests {
		got := table.SpawnRange(tt.index)
		if got.Min != tt.min || got.Max != tt.max {
			t.Errorf("SpawnRange(%d) = %+v, want {%d %d}", tt.index, got, tt.min, tt.max)
		}
	}
}

func TestSpawnRangeFixedDifficulty(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	config.ApplyFarmPreset(&cfg, config.DifficultyFixed)
	table := NewLevelTable(cfg)

	if table.SpawnRange(5) != table.SpawnRange(0) {
		t.Errorf("fixed difficulty should keep the first range, got %+v vs %+v",
			table.SpawnRange(5), table.SpawnRange(0))
	}
}

func TestLevelCycles(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	table := NewLevelTable(cfg)
	n := table.Count()

	for i := range n {
		a, b := table.Level(i), table.Level(i+n)
		if a.Name != b.Name || a.Emoji != b.Emoji {
			t.Errorf("Level(%d) = %q, Level(%d) = %q; want same row", i, a.Name, i+n, b.Name)
		}
		if b.Number() != i+n+1 {
			t.Errorf("Level(%d).Number() = %d, want %d", i+n, b.Number(), i+n+1)
		}
	}
}

func TestLevelWandering(t *testing.T) {
	table := NewLevelTable(config.DefaultFarmConfig())

	tests := []struct {
		index     int
		wandering bool
	}{
		{0, true},  // Sheep
		{1, false}, // Corn
		{2, true},  // Pigs
		{3, false}, // Eggs
	}
	for _, tt := range tests {
		l := table.Level(tt.index)
		if l.Wandering != tt.wandering {
			t.Errorf("Level(%d) %s: Wandering = %v, want %v", tt.index, l.Name, l.Wandering, tt.wandering)
		}
	}
}

func TestLevelScaling(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	config.ApplyFarmPreset(&cfg, config.DifficultyEasy)
	table := NewLevelTable(cfg)

	base := cfg.Levels[0]
	l := table.Level(0)
	if want := base.TargetTime * cfg.Difficulty.Scaling.TargetTimeMultiplier; l.TargetTime != want {
		t.Errorf("TargetTime = %v, want %v", l.TargetTime, want)
	}
	if want := base.WanderSpeed * cfg.Difficulty.Scaling.WanderMultiplier; l.WanderSpeed != want {
		t.Errorf("WanderSpeed = %v, want %v", l.WanderSpeed, want)
	}
}

func TestEmptyLevelTable(t *testing.T) {
	cfg := config.DefaultFarmConfig()
	cfg.Levels = nil
	table := NewLevelTable(cfg)

	l := table.Level(3)
	if l.Index != 3 || l.TargetTime <= 0 {
		t.Errorf("empty table level = %+v", l)
	}
}
