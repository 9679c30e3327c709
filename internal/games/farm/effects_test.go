package farm

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestBurstKinds(t *testing.T) {
	g := newTestGame(t)
	fx := g.cfg.Effects

	for _, k := range fx.Kinds {
		g.particles = nil
		n := g.spawnBurst(k.Name, r2.Vec{X: 10, Y: 10})
		if n < fx.MinParticles || n > fx.MaxParticles {
			t.Errorf("%s: %d particles, want in [%d,%d]", k.Name, n, fx.MinParticles, fx.MaxParticles)
		}
		if len(g.particles) != n {
			t.Errorf("%s: spawnBurst returned %d but created %d", k.Name, n, len(g.particles))
		}
		for _, p := range g.particles {
			if p.Kind != k.Name || p.MaxLife != k.Duration {
				t.Errorf("%s: particle %+v has wrong kind or life", k.Name, p)
			}
			if p.Vel.Y >= 0 {
				t.Errorf("%s: particle launched downward (%v)", k.Name, p.Vel)
			}
		}
	}
}

func TestUnknownBurstKind(t *testing.T) {
	g := newTestGame(t)
	if n := g.spawnBurst("fireworks", r2.Vec{X: 10, Y: 10}); n != 0 {
		t.Errorf("unknown kind created %d particles", n)
	}
	if len(g.particles) != 0 {
		t.Errorf("particles = %d, want 0", len(g.particles))
	}
}

func TestParticlesExpireOnlyAfterMaxLife(t *testing.T) {
	g := newTestGame(t)
	for _, k := range g.cfg.Effects.Kinds {
		g.spawnBurst(k.Name, r2.Vec{X: 40, Y: 12})
	}

	for len(g.particles) > 0 {
		before := make(map[uint64]Particle, len(g.particles))
		for _, p := range g.particles {
			before[p.ID] = p
		}

		g.updateParticles(g.dt)

		after := make(map[uint64]bool, len(g.particles))
		for _, p := range g.particles {
			after[p.ID] = true
			if p.Age >= p.MaxLife {
				t.Fatalf("particle %d kept at age %v >= %v", p.ID, p.Age, p.MaxLife)
			}
		}
		for id, p := range before {
			if !after[id] && p.Age+g.dt < p.MaxLife {
				t.Fatalf("particle %d removed early at age %v of %v", id, p.Age+g.dt, p.MaxLife)
			}
		}
	}
}

func TestParticleGravity(t *testing.T) {
	g := newTestGame(t)
	g.particles = []Particle{{ID: 1, Glyph: "✨", Pos: r2.Vec{X: 10, Y: 10}, MaxLife: 10}}

	g.updateParticles(g.dt)
	if g.particles[0].Vel.Y <= 0 {
		t.Errorf("gravity did not pull the particle down: %v", g.particles[0].Vel)
	}
}

func TestFloatingTextExpiresByTimer(t *testing.T) {
	g := newTestGame(t)
	placeItems(g, r2.Vec{X: 60, Y: 15})
	id := g.spawnFloatingText("+1", r2.Vec{X: 5, Y: 5})
	ttl := g.cfg.Timing.FloatingTextTTL

	for g.clock+g.dt < ttl-1e-9 {
		g.advance(g.dt)
		if len(g.texts) != 1 || g.texts[0].ID != id {
			t.Fatalf("text removed early at %v", g.clock)
		}
	}
	for range 2 {
		g.advance(g.dt)
	}
	if len(g.texts) != 0 {
		t.Errorf("text still shown at %v", g.clock)
	}
}

func TestTeardownCancelsTimers(t *testing.T) {
	g := newTestGame(t)
	g.spawnFloatingText("+1", r2.Vec{X: 5, Y: 5})
	g.items = nil
	g.checkLevelComplete()
	if g.timers.Len() != 2 {
		t.Fatalf("pending timers = %d, want 2", g.timers.Len())
	}

	g.Teardown()

	if g.timers.Len() != 0 {
		t.Errorf("pending timers after teardown = %d", g.timers.Len())
	}
	level := g.levelIndex
	g.clock += 10
	g.fireTimers()
	if g.levelIndex != level {
		t.Error("level advanced after teardown")
	}
}
