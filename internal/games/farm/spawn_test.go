package farm

import (
	"math"
	"testing"
)

func TestSpawnCountAndPlacement(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := newTestGame(t)
		g.Reset(testRuntime(seed))
		inner := g.arena.Inner()

		for index := range 6 {
			g.levelIndex = index
			g.startLevel()

			r := g.levels.SpawnRange(index)
			if n := len(g.items); n < r.Min || n > r.Max {
				t.Fatalf("seed %d level %d: %d items, want in [%d,%d]", seed, index, n, r.Min, r.Max)
			}

			seen := make(map[ItemID]bool)
			for _, it := range g.items {
				if !inner.Contains(it.Pos) {
					t.Errorf("seed %d level %d: item at %v outside %+v", seed, index, it.Pos, inner)
				}
				if seen[it.ID] || it.ID == NoItem {
					t.Errorf("seed %d level %d: bad or duplicate ID %d", seed, index, it.ID)
				}
				seen[it.ID] = true
			}
		}
	}
}

func TestSpawnVelocity(t *testing.T) {
	g := newTestGame(t)

	for index := range 4 {
		g.levelIndex = index
		g.startLevel()
		level := g.levels.Level(index)

		for _, it := range g.items {
			speed := math.Hypot(it.Vel.X, it.Vel.Y)
			switch {
			case level.Wandering && math.Abs(speed-level.WanderSpeed) > 1e-9:
				t.Errorf("%s: speed %v, want %v", level.Name, speed, level.WanderSpeed)
			case !level.Wandering && it.Wandering():
				t.Errorf("%s: static item has velocity %v", level.Name, it.Vel)
			}
			if it.Type != level.Emoji {
				t.Errorf("%s: item type %q, want %q", level.Name, it.Type, level.Emoji)
			}
		}
	}
}

func TestStartLevelResetsLevelState(t *testing.T) {
	g := newTestGame(t)
	g.deposits = append(g.deposits, "🐑", "🐑")
	g.farmer.TargetID = g.items[0].ID
	g.bonus = 30
	g.clock = 12

	g.startLevel()

	if len(g.deposits) != 0 {
		t.Errorf("deposits = %v, want empty", g.deposits)
	}
	if g.farmer.Status() != StatusIdle {
		t.Errorf("status = %v, want idle", g.farmer.Status())
	}
	if g.bonus != 0 || g.levelStart != 12 || !g.populated {
		t.Errorf("bonus=%d levelStart=%v populated=%v", g.bonus, g.levelStart, g.populated)
	}
}

func TestSpawnAvoidsFarmZone(t *testing.T) {
	inZone := 0
	total := 0
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGame(t)
		g.Reset(testRuntime(seed))
		for _, it := range g.items {
			total++
			if g.arena.inZone(it.Pos) {
				inZone++
			}
		}
	}
	if inZone > 0 {
		t.Errorf("%d of %d items spawned in the farm zone", inZone, total)
	}
}
