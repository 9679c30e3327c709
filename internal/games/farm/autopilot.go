package farm

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/farmhand/internal/core"
)

// Autopilot plays the game by sending the farmer after the nearest item
// whenever it is idle.
type Autopilot struct{}

// Decide returns the item to select for snap, if any.
func (Autopilot) Decide(snap Snapshot) (ItemID, bool) {
	if snap.State != StatePlaying || snap.Farmer.Status != StatusIdle {
		return NoItem, false
	}

	farmer := r2.Vec{X: snap.Farmer.X, Y: snap.Farmer.Y}
	best := NoItem
	bestDist := math.Inf(1)
	for _, it := range snap.Items {
		d := r2.Norm2(r2.Sub(r2.Vec{X: it.X, Y: it.Y}, farmer))
		if d < bestDist {
			best, bestDist = it.ID, d
		}
	}
	return best, best != NoItem
}

// Drive steps g for ticks frames with the autopilot choosing targets.
func (a Autopilot) Drive(g *Game, ticks int) {
	frame := core.NewInputFrame()
	for range ticks {
		if id, ok := a.Decide(g.Snapshot()); ok {
			g.SelectItem(id)
		}
		g.Step(frame)
	}
}
