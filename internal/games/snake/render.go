package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

const hudHeight = 2

// layout maps arena cells to screen cells. Arena y grows upwards, screen
// rows grow downwards, so rows are flipped.
type layout struct {
	arena     grid.Arena
	cellWidth int
	box       core.Rect
}

// newLayout centres the arena under the HUD. The drawn area covers
// [0,W]×[0,H] inclusive, since the head survives on the far edges.
func newLayout(arena grid.Arena, cellWidth, screenW int) layout {
	if cellWidth < 1 {
		cellWidth = 1
	}
	w := (arena.Width+1)*cellWidth + 2
	h := arena.Height + 1 + 2
	return layout{
		arena:     arena,
		cellWidth: cellWidth,
		box:       core.NewRect((screenW-w)/2, hudHeight, w, h),
	}
}

func (l layout) fits(screenW, screenH int) bool {
	return l.box.X >= 0 && l.box.W <= screenW && l.box.Bottom() <= screenH
}

// project returns the screen column and row of p's left edge.
func (l layout) project(p grid.Position) (int, int, bool) {
	if p.X < 0 || p.Y < 0 || p.X > l.arena.Width || p.Y > l.arena.Height {
		return 0, 0, false
	}
	x := l.box.X + 1 + p.X*l.cellWidth
	y := l.box.Y + 1 + (l.arena.Height - p.Y)
	return x, y, true
}

// glyphFor picks a fill character by how much of the cell an object covers.
func glyphFor(size Size) rune {
	fill := min(size.Width, size.Height)
	switch {
	case fill >= 0.75:
		return '█'
	case fill >= 0.5:
		return '▓'
	default:
		return '░'
	}
}

func colorFor(kind Kind) core.Color {
	switch kind {
	case KindHead:
		return core.ColorBrightWhite
	case KindSegment:
		return core.ColorGray
	case KindFood:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	g.renderHUD(dst)

	l := newLayout(g.state.Arena(), g.cfg.Render.CellWidth, dst.Width())
	if !l.fits(dst.Width(), dst.Height()) {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	dst.DrawBox(l.box, core.ColorDarkGray)
	for _, obj := range g.state.Objects() {
		x, y, ok := l.project(obj.Position)
		if !ok {
			continue
		}
		r := glyphFor(obj.Size)
		c := colorFor(obj.Kind)
		for i := 0; i < l.cellWidth; i++ {
			dst.SetColored(x+i, y, r, c)
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" %s  Length: %d  Food: %d  Resets: %d", g.Title(), st.Length, st.Food, st.Resets)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}
