package farm

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// updateWanderers moves wandering items and bounces them off the inner bounds.
func (g *Game) updateWanderers(dt float64) {
	inner := g.arena.Inner()
	for i := range g.items {
		it := &g.items[i]
		if !it.Wandering() {
			continue
		}
		it.Pos = r2.Add(it.Pos, r2.Scale(dt, it.Vel))

		switch {
		case it.Pos.X < inner.Min.X:
			it.Pos.X = inner.Min.X
			it.Vel.X = math.Abs(it.Vel.X)
		case it.Pos.X > inner.Max.X:
			it.Pos.X = inner.Max.X
			it.Vel.X = -math.Abs(it.Vel.X)
		}
		switch {
		case it.Pos.Y < inner.Min.Y:
			it.Pos.Y = inner.Min.Y
			it.Vel.Y = math.Abs(it.Vel.Y)
		case it.Pos.Y > inner.Max.Y:
			it.Pos.Y = inner.Max.Y
			it.Vel.Y = -math.Abs(it.Vel.Y)
		}
	}
}

// updateFarmer walks the farmer toward its target and handles pickup and
// deposit once within the pickup radius.
func (g *Game) updateFarmer(dt float64) {
	speed := g.cfg.Farmer.Speed * g.cfg.Difficulty.Scaling.Speed()

	var target r2.Vec
	idx := -1
	switch g.farmer.Status() {
	case StatusIdle:
		return
	case StatusCarrying:
		target = g.arena.FarmCenter()
		speed *= g.cfg.Farmer.CarryFactor
	case StatusPursuing:
		idx = g.findItem(g.farmer.TargetID)
		if idx < 0 {
			return
		}
		target = g.items[idx].Pos
	}

	delta := r2.Sub(target, g.farmer.Pos)
	dist := r2.Norm(delta)
	if dist < g.cfg.Farmer.PickupRadius {
		if idx >= 0 {
			g.pickUp(idx)
		} else {
			g.deposit()
		}
		return
	}

	step := min(speed*dt, dist)
	g.farmer.Pos = r2.Add(g.farmer.Pos, r2.Scale(step/dist, delta))
}

// pickUp moves the item at idx from the field into the farmer's hands.
func (g *Game) pickUp(idx int) {
	it := g.items[idx]
	g.items = slices.Delete(g.items, idx, idx+1)
	g.farmer.Carrying = &it
	g.farmer.TargetID = NoItem
}

// deposit delivers the carried item to the farm.
func (g *Game) deposit() {
	it := g.farmer.Carrying
	g.farmer.Carrying = nil
	g.deposits = append(g.deposits, it.Type)
	g.score += g.cfg.Scoring.DepositPoints

	at := g.arena.FarmCenter()
	if kinds := g.cfg.Effects.Kinds; len(kinds) > 0 {
		g.spawnBurst(kinds[g.rng.Intn(len(kinds))].Name, at)
	}
	g.spawnFloatingText("+1", at)

	g.logger().Debug("deposited", "type", it.Type, "score", g.score)
}

// dropCarried puts the carried item back on the field next to the farmer.
func (g *Game) dropCarried() {
	it := *g.farmer.Carrying
	g.farmer.Carrying = nil

	offset := r2.Vec{X: g.cfg.Farmer.DropOffsetX, Y: g.cfg.Farmer.DropOffsetY}
	it.Pos = g.arena.Inner().Clamp(r2.Add(g.farmer.Pos, offset))
	g.items = append(g.items, it)
}
