package farm

import (
	"testing"

	"github.com/vovakirdan/farmhand/internal/config"
	"github.com/vovakirdan/farmhand/internal/core"
)

func TestTimeBonus(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		elapsed float64
		want    int
	}{
		{"ten seconds early", 30, 20, 20},
		{"overtime", 30, 35, 0},
		{"exactly on time", 30, 30, 0},
		{"partial step", 30, 25.1, 0},
		{"one step", 30, 24.9, 10},
		{"instant", 30, 0, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeBonus(tt.target, tt.elapsed, 5, 10); got != tt.want {
				t.Errorf("TimeBonus(%v, %v) = %d, want %d", tt.target, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestLevelScenario(t *testing.T) {
	g := newTestGame(t)

	spawned := len(g.items)
	r := g.levels.SpawnRange(0)
	if spawned < r.Min || spawned > r.Max {
		t.Fatalf("level 0 spawned %d items, want in [%d,%d]", spawned, r.Min, r.Max)
	}

	var pilot Autopilot
	frame := core.NewInputFrame()
	for ticks := 0; g.Snapshot().State == StatePlaying; ticks++ {
		if ticks > 60*120 {
			t.Fatalf("level not cleared after %d ticks, %d items left", ticks, len(g.items))
		}
		if id, ok := pilot.Decide(g.Snapshot()); ok {
			g.SelectItem(id)
		}
		g.Step(frame)
	}

	if len(g.items) != 0 || g.farmer.Carrying != nil {
		t.Fatalf("cleared with %d items on field, carrying=%v", len(g.items), g.farmer.Carrying)
	}
	if len(g.deposits) != spawned {
		t.Errorf("deposits = %d, want %d", len(g.deposits), spawned)
	}
	level := g.levels.Level(0)
	wantBonus := TimeBonus(level.TargetTime, g.clock-g.levelStart, 5, 10)
	if g.bonus != wantBonus {
		t.Errorf("bonus = %d, want %d", g.bonus, wantBonus)
	}
	if g.score != spawned+g.bonus {
		t.Errorf("score = %d, want %d items + %d bonus", g.score, spawned, g.bonus)
	}

	// The next level arrives two seconds later.
	for range 119 {
		g.Step(frame)
	}
	if g.levelIndex != 0 || g.Snapshot().State != StateLevelCleared {
		t.Fatalf("advanced early: level %d state %s", g.levelIndex, g.Snapshot().State)
	}
	for range 3 {
		g.Step(frame)
	}
	if g.levelIndex != 1 {
		t.Fatalf("levelIndex = %d, want 1", g.levelIndex)
	}
	if g.Snapshot().State != StatePlaying || len(g.items) == 0 {
		t.Errorf("level 2 not populated: state %s, %d items", g.Snapshot().State, len(g.items))
	}
	if len(g.deposits) != 0 || g.bonus != 0 {
		t.Errorf("level 2 kept deposits %v or bonus %d", g.deposits, g.bonus)
	}
}

func TestCompletionFiresOnce(t *testing.T) {
	g := newTestGame(t)
	g.items = nil

	g.checkLevelComplete()
	score := g.score
	g.checkLevelComplete()
	g.checkLevelComplete()

	if g.score != score {
		t.Errorf("score changed from %d to %d on repeated checks", score, g.score)
	}
	if g.timers.Len() != 1 {
		t.Errorf("pending timers = %d, want 1", g.timers.Len())
	}
}

func TestNotCompleteWhileCarrying(t *testing.T) {
	g := newTestGame(t)
	g.items = nil
	g.farmer.Carrying = &Item{ID: 999, Type: "🐑"}

	g.checkLevelComplete()

	if g.transitioning {
		t.Error("level completed while the last item was still carried")
	}
}

func TestEndlessCyclesLevels(t *testing.T) {
	g := newTestGame(t)
	last := g.levels.Count() - 1
	g.levelIndex = last
	g.startLevel()
	g.items = nil
	g.checkLevelComplete()

	g.clock += g.cfg.Timing.TransitionDelay
	g.fireTimers()

	if g.levelIndex != last+1 {
		t.Fatalf("levelIndex = %d, want %d", g.levelIndex, last+1)
	}
	if got, want := g.levels.Level(g.levelIndex).Name, g.cfg.Levels[0].Name; got != want {
		t.Errorf("cycled to %q, want %q", got, want)
	}
	if g.won {
		t.Error("endless mode reported a win")
	}
}

func TestCampaignWinsAfterLastLevel(t *testing.T) {
	g := NewWithConfig(ModeCampaign, config.DefaultFarmConfig())
	g.Reset(testRuntime(7))
	last := g.levels.Count() - 1
	g.levelIndex = last
	g.startLevel()
	g.items = nil
	g.checkLevelComplete()

	g.clock += g.cfg.Timing.TransitionDelay
	g.fireTimers()

	if !g.won {
		t.Fatal("campaign not won after the last level")
	}
	snap := g.Snapshot()
	if snap.State != StateWin || snap.Level != last+1 {
		t.Errorf("snapshot state %s level %d", snap.State, snap.Level)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false after a win")
	}

	// Further steps change nothing.
	score := g.score
	g.Step(core.NewInputFrame())
	if g.score != score || g.levelIndex != last {
		t.Errorf("game kept running after the win")
	}
}
