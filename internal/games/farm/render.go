package farm

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/farmhand/internal/core"
)

// RenderSnapshot draws a frame from snap alone.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	renderHUD(dst, snap)
	dst.DrawBox(snap.Fence, core.ColorBrown)
	renderZone(dst, snap)

	for _, it := range snap.Items {
		x, y := cell(it.X, it.Y)
		dst.SetGlyph(x, y, it.Type, core.ColorDefault)
	}

	fx, fy := cell(snap.Farmer.X, snap.Farmer.Y)
	dst.SetGlyph(fx, fy, snap.FarmerGlyph, core.ColorDefault)
	if snap.Farmer.Carrying != "" {
		dst.SetGlyph(fx+glyphCols, fy, snap.Farmer.Carrying, core.ColorDefault)
	}

	for _, p := range snap.Particles {
		x, y := cell(p.X, p.Y)
		if snap.Fence.Inset(1).Contains(x, y) {
			dst.SetGlyph(x, y, p.Glyph, core.ColorBrightMagenta)
		}
	}

	for _, t := range snap.Texts {
		rise := 0.0
		if t.TTL > 0 {
			rise = 2 * t.Age / t.TTL
		}
		x, y := cell(t.X, t.Y-rise)
		dst.DrawTextColor(x, y, t.Text, core.ColorBrightYellow)
	}

	switch snap.State {
	case StateLevelCleared:
		line2 := "Next level coming up"
		if snap.Bonus > 0 {
			line2 = fmt.Sprintf("Time Bonus: +%d", snap.Bonus)
		}
		renderOverlay(dst, fmt.Sprintf("Level %d cleared!", snap.Level), line2)
	case StateWin:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", snap.Score))
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and the farm deposit row.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s Level %d: %s  Score: %d  Time: %.0fs/%.0fs  Left: %d",
		snap.LevelEmoji, snap.Level, snap.LevelName, snap.Score,
		math.Floor(snap.Elapsed), snap.TargetTime, snap.Remaining())
	if snap.Bonus > 0 {
		hud += fmt.Sprintf("  Time Bonus: +%d", snap.Bonus)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	deposits := snap.VisibleDeposits()
	row := " Farm: " + strings.Join(deposits, "")
	if hidden := len(snap.Deposits) - len(deposits); hidden > 0 {
		row += fmt.Sprintf(" +%d", hidden)
	}
	dst.DrawTextColor(0, 1, row, core.ColorGreen)
}

// renderZone draws the farm zone outline with its marker glyph centered.
func renderZone(dst *core.Screen, snap Snapshot) {
	dst.DrawBox(snap.Zone, core.ColorGreen)
	cx, cy := snap.Zone.Center()
	dst.SetGlyph(cx-core.GlyphWidth(snap.ZoneGlyph)/2, cy, snap.ZoneGlyph, core.ColorDefault)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(core.TextWidth(line1), core.TextWidth(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// cell maps an arena position to the screen cell holding its glyph.
func cell(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}

// HitTest maps a clicked cell to the item drawn there. A glyph covers two
// columns; clicks one column either side still count. When several items
// qualify the one nearest the click wins.
func HitTest(items []ItemView, x, y int) (ItemID, bool) {
	best := NoItem
	bestDist := math.Inf(1)
	for _, it := range items {
		ix, iy := cell(it.X, it.Y)
		if y != iy || x < ix-1 || x > ix+glyphCols {
			continue
		}
		d := math.Abs(float64(x) + 0.5 - (it.X + glyphCols/2.0))
		if d < bestDist {
			best, bestDist = it.ID, d
		}
	}
	return best, best != NoItem
}
