package farm

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// startLevel populates the field for the current level index.
func (g *Game) startLevel() {
	level := g.levels.Level(g.levelIndex)
	spawn := g.levels.SpawnRange(g.levelIndex)

	count := spawn.Min
	if spawn.Max > spawn.Min {
		count += g.rng.Intn(spawn.Max - spawn.Min + 1)
	}

	inner := g.arena.Inner()
	g.items = make([]Item, 0, count)
	for range count {
		g.items = append(g.items, g.spawnItem(level, inner))
	}

	g.deposits = g.deposits[:0]
	g.farmer.TargetID = NoItem
	g.farmer.Carrying = nil
	g.levelStart = g.clock
	g.bonus = 0
	g.populated = true

	g.logger().Info("level started",
		"level", level.Number(),
		"name", level.Name,
		"items", count,
		"wandering", level.Wandering)
}

// spawnItem creates one item at a random point inside inner, away from the
// farm zone when possible.
func (g *Game) spawnItem(level Level, inner Bounds) Item {
	pos := g.randomPoint(inner)
	for range g.cfg.Spawn.ZoneRerolls {
		if !g.arena.inZone(pos) {
			break
		}
		pos = g.randomPoint(inner)
	}

	it := Item{
		ID:   ItemID(g.newID()),
		Type: level.Emoji,
		Pos:  pos,
	}
	if level.Wandering {
		angle := g.rng.Float64() * 2 * math.Pi
		it.Vel = r2.Vec{
			X: math.Cos(angle) * level.WanderSpeed,
			Y: math.Sin(angle) * level.WanderSpeed,
		}
	}
	return it
}

func (g *Game) randomPoint(b Bounds) r2.Vec {
	return r2.Vec{
		X: b.Min.X + g.rng.Float64()*b.Width(),
		Y: b.Min.Y + g.rng.Float64()*b.Height(),
	}
}
