package farm

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// spawnBurst emits a burst of particles of the named kind at p and returns
// how many were created. Unknown kinds emit nothing.
func (g *Game) spawnBurst(kind string, at r2.Vec) int {
	k, ok := g.cfg.ParticleKind(kind)
	if !ok || len(k.Glyphs) == 0 {
		return 0
	}

	fx := g.cfg.Effects
	n := fx.MinParticles
	if fx.MaxParticles > fx.MinParticles {
		n += g.rng.Intn(fx.MaxParticles - fx.MinParticles + 1)
	}

	for range n {
		offset := r2.Vec{
			X: (g.rng.Float64()*2 - 1) * k.Spread,
			Y: (g.rng.Float64()*2 - 1) * k.Spread / 2, // Cells are twice as tall as wide
		}
		vel := r2.Vec{
			X: (g.rng.Float64()*2 - 1) * k.Speed,
			Y: -k.Lift * (0.5 + g.rng.Float64()/2),
		}
		g.particles = append(g.particles, Particle{
			ID:      g.newID(),
			Kind:    k.Name,
			Glyph:   k.Glyphs[g.rng.Intn(len(k.Glyphs))],
			Pos:     r2.Add(at, offset),
			Vel:     vel,
			Born:    g.clock,
			MaxLife: k.Duration,
		})
	}
	return n
}

// updateParticles ages, integrates and culls particles.
func (g *Game) updateParticles(dt float64) {
	if len(g.particles) == 0 {
		return
	}
	// Drag is the fraction of velocity kept after one second.
	decay := math.Pow(g.cfg.Effects.Drag, dt)
	gravity := g.cfg.Effects.Gravity

	alive := g.particles[:0]
	for _, p := range g.particles {
		p.Age += dt
		if p.Age >= p.MaxLife {
			continue
		}
		p.Vel = r2.Scale(decay, p.Vel)
		p.Vel.Y += gravity * dt
		p.Pos = r2.Add(p.Pos, r2.Scale(dt, p.Vel))
		alive = append(alive, p)
	}
	clear(g.particles[len(alive):])
	g.particles = alive
}

// spawnFloatingText shows text at p until its timer expires.
func (g *Game) spawnFloatingText(text string, at r2.Vec) uint64 {
	ttl := g.cfg.Timing.FloatingTextTTL
	id := g.newID()
	g.texts = append(g.texts, FloatingText{
		ID:   id,
		Text: text,
		Pos:  at,
		Born: g.clock,
		TTL:  ttl,
	})
	g.timers.Schedule(g.clock+ttl, timerExpireText, id)
	return id
}

func (g *Game) removeText(id uint64) {
	g.texts = slices.DeleteFunc(g.texts, func(t FloatingText) bool { return t.ID == id })
}
