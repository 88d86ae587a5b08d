package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
)

// cellWidth is the number of terminal columns per arena cell. Terminal
// glyphs are roughly twice as tall as wide; two columns per cell keeps
// the arena square on screen.
const cellWidth = 2

// fullBlockThreshold splits entity sizes into two glyph weights.
const fullBlockThreshold = 0.8

var (
	styleHead    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(179, 179, 179))
	styleSegment = tcell.StyleDefault.Foreground(tcell.NewRGBColor(77, 77, 77))
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 100))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer draws the arena letterboxed in the terminal.
type Renderer struct {
	screen        tcell.Screen
	width, height int
}

// NewRenderer creates a renderer on an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.width, r.height = screen.Size()
	return r
}

// HandleResize re-reads the terminal dimensions.
func (r *Renderer) HandleResize() {
	r.width, r.height = r.screen.Size()
	r.screen.Sync()
}

// Draw renders one frame of the world.
func (r *Renderer) Draw(world *engine.World) {
	r.screen.Clear()

	cfg := world.Resource.Config
	state := world.Resource.Game.State

	arenaW := cfg.ArenaWidth * cellWidth
	arenaH := cfg.ArenaHeight

	// Letterbox: center the arena, leave a row for the HUD
	originX := (r.width - arenaW) / 2
	originY := (r.height - arenaH - 1) / 2
	if originX < 1 {
		originX = 1
	}
	if originY < 1 {
		originY = 1
	}

	r.drawBorder(originX, originY, arenaW, arenaH)

	// Body first, then food, head last so it wins its cell on the
	// collision tick
	for _, e := range world.Segments.All() {
		if world.Heads.Has(e) {
			continue
		}
		r.drawEntity(world, e, originX, originY, cfg.ArenaHeight, styleSegment)
	}
	for _, e := range world.Foods.All() {
		r.drawEntity(world, e, originX, originY, cfg.ArenaHeight, styleFood)
	}
	if head, ok := state.Head(); ok {
		r.drawEntity(world, head, originX, originY, cfg.ArenaHeight, styleHead)
	}

	hud := fmt.Sprintf(" length %d  round %d ", state.SegmentCount(), state.Rounds()+1)
	r.drawText(originX, originY+arenaH+1, hud, styleHUD)

	r.screen.Show()
}

// drawEntity paints one arena cell. Grid Y grows upward; screen rows
// grow downward, so the row is flipped.
func (r *Renderer) drawEntity(world *engine.World, e core.Entity, originX, originY, arenaHeight int, style tcell.Style) {
	pos, ok := world.Positions.Get(e)
	if !ok {
		return
	}

	glyph := '▓'
	if size, ok := world.Sizes.Get(e); ok && size.Width >= fullBlockThreshold {
		glyph = '█'
	}

	screenX := originX + pos.X*cellWidth
	screenY := originY + (arenaHeight - 1 - pos.Y)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(screenX+i, screenY, glyph, nil, style)
	}
}

func (r *Renderer) drawBorder(originX, originY, arenaW, arenaH int) {
	for x := originX - 1; x <= originX+arenaW; x++ {
		r.screen.SetContent(x, originY-1, '─', nil, styleBorder)
		r.screen.SetContent(x, originY+arenaH, '─', nil, styleBorder)
	}
	for y := originY; y < originY+arenaH; y++ {
		r.screen.SetContent(originX-1, y, '│', nil, styleBorder)
		r.screen.SetContent(originX+arenaW, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(originX-1, originY-1, '┌', nil, styleBorder)
	r.screen.SetContent(originX+arenaW, originY-1, '┐', nil, styleBorder)
	r.screen.SetContent(originX-1, originY+arenaH, '└', nil, styleBorder)
	r.screen.SetContent(originX+arenaW, originY+arenaH, '┘', nil, styleBorder)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
