package farm

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/farmhand/internal/config"
	"github.com/vovakirdan/farmhand/internal/core"
)

// glyphCols is the width of an emoji glyph in terminal columns.
const glyphCols = 2

// Bounds is an axis-aligned rectangle in arena coordinates (inclusive).
type Bounds struct {
	Min, Max r2.Vec
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint.
func (b Bounds) Center() r2.Vec {
	return r2.Scale(0.5, r2.Add(b.Min, b.Max))
}

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p r2.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp moves p to the nearest point inside the bounds.
func (b Bounds) Clamp(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: core.ClampF(p.X, b.Min.X, b.Max.X),
		Y: core.ClampF(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Inset shrinks the bounds by m on every side. An axis that would invert
// collapses to its midpoint.
func (b Bounds) Inset(m float64) Bounds {
	out := Bounds{
		Min: r2.Vec{X: b.Min.X + m, Y: b.Min.Y + m},
		Max: r2.Vec{X: b.Max.X - m, Y: b.Max.Y - m},
	}
	c := b.Center()
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	return out
}

// Arena is the fenced playing field derived from the viewport.
type Arena struct {
	Fence  core.Rect // Fence outline in screen cells
	Zone   core.Rect // Farm deposit zone in screen cells
	Bounds Bounds    // Legal positions for the farmer and items
	margin float64
}

// ComputeArena derives the arena from the viewport size. Viewports below the
// configured minimum produce the minimum playable rectangle; the fence then
// extends past the screen edge and is clipped when drawn.
func ComputeArena(screenW, screenH int, ac config.ArenaConfig, zc config.ZoneConfig) Arena {
	edge := ac.FenceInset + ac.Padding

	minX := float64(edge)
	minY := float64(ac.HUDRows + edge)
	// Positions are the left column of a wide glyph, so keep one extra column.
	maxX := float64(screenW - edge - glyphCols)
	maxY := float64(screenH - ac.FooterRows - edge - 1)

	if maxX-minX < float64(ac.MinWidth) {
		maxX = minX + float64(ac.MinWidth)
	}
	if maxY-minY < float64(ac.MinHeight) {
		maxY = minY + float64(ac.MinHeight)
	}

	fenceX := int(minX) - edge
	fenceY := int(minY) - edge
	fence := core.NewRect(fenceX, fenceY,
		int(maxX)+glyphCols+edge-fenceX,
		int(maxY)+1+edge-fenceY)

	zone := core.NewRect(int(minX), int(minY),
		min(zc.Width, int(maxX-minX)+glyphCols),
		min(zc.Height, int(maxY-minY)+1))

	return Arena{
		Fence: fence,
		Zone:  zone,
		Bounds: Bounds{
			Min: r2.Vec{X: minX, Y: minY},
			Max: r2.Vec{X: maxX, Y: maxY},
		},
		margin: ac.ItemMargin,
	}
}

// Inner returns the bounds items spawn and wander in.
func (a Arena) Inner() Bounds {
	return a.Bounds.Inset(a.margin)
}

// FarmCenter returns the deposit point.
func (a Arena) FarmCenter() r2.Vec {
	return r2.Vec{
		X: float64(a.Zone.X) + float64(a.Zone.W)/2,
		Y: float64(a.Zone.Y) + float64(a.Zone.H)/2,
	}
}

// inZone reports whether an item glyph at p would overlap the farm zone.
func (a Arena) inZone(p r2.Vec) bool {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	return a.Zone.Contains(x, y) || a.Zone.Contains(x+glyphCols-1, y)
}
