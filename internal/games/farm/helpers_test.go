package farm

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/farmhand/internal/config"
	"github.com/vovakirdan/farmhand/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(ModeEndless, config.DefaultFarmConfig())
	g.Reset(testRuntime(42))
	return g
}

// placeItems replaces the field with static items at the given positions.
func placeItems(g *Game, positions ...r2.Vec) []ItemID {
	g.items = g.items[:0]
	ids := make([]ItemID, len(positions))
	for i, p := range positions {
		ids[i] = ItemID(g.newID())
		g.items = append(g.items, Item{ID: ids[i], Type: "🌽", Pos: p})
	}
	return ids
}
