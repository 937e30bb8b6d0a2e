package galaga

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/shooter"
)

// Visual characters for rendering
const (
	PlayerChar       = '▲'
	EnemyChar        = '▼'
	PlayerBulletChar = '|'
	EnemyBulletChar  = '•'
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// Minimum terminal size that still fits the HUD and a usable playfield.
const (
	MinScreenW = 20
	MinScreenH = 12
)

var glyphs = map[shooter.Kind]rune{
	shooter.KindPlayer:       PlayerChar,
	shooter.KindEnemy:        EnemyChar,
	shooter.KindPlayerBullet: PlayerBulletChar,
	shooter.KindEnemyBullet:  EnemyBulletChar,
}

// viewport maps arena coordinates (origin at centre, +y up) onto the cells
// inside the playfield border.
type viewport struct {
	frame core.Rect // border, inclusive
	inner core.Rect // drawable cells
	arena shooter.Arena
}

// newViewport fits the arena into a w x h screen below a one-line HUD,
// keeping its proportions and centring it horizontally.
func newViewport(arena shooter.Arena, w, h int) viewport {
	innerH := h - 3
	innerW := int(math.Round(float64(innerH) * arena.Width / arena.Height * cellAspect))
	innerW = core.Clamp(innerW, 1, w-2)

	frame := core.NewRect((w-innerW-2)/2, 1, innerW+2, innerH+2)
	return viewport{
		frame: frame,
		inner: core.NewRect(frame.X+1, frame.Y+1, innerW, innerH),
		arena: arena,
	}
}

// cell converts an arena point to the screen cell containing it.
func (v viewport) cell(p core.Vec2) (int, int) {
	fx := (p.X + v.arena.HalfWidth()) / v.arena.Width
	fy := (v.arena.Top() - p.Y) / v.arena.Height
	x := v.inner.X + int(math.Floor(fx*float64(v.inner.W)))
	y := v.inner.Y + int(math.Floor(fy*float64(v.inner.H)))
	return core.Clamp(x, v.inner.X, v.inner.Right()-1), core.Clamp(y, v.inner.Y, v.inner.Bottom()-1)
}

// span converts a sprite's half-extents to a cell footprint of at least 1x1.
func (v viewport) span(half core.Vec2) (int, int) {
	w := int(math.Round(2 * half.X / v.arena.Width * float64(v.inner.W)))
	h := int(math.Round(2 * half.Y / v.arena.Height * float64(v.inner.H)))
	return core.Max(w, 1), core.Max(h, 1)
}

// drawSprite fills the sprite's footprint, centred on its position and
// clipped to the playfield.
func (v viewport) drawSprite(dst *core.Screen, sp shooter.Sprite) {
	cx, cy := v.cell(sp.Pos)
	w, h := v.span(sp.Half)
	x0, y0 := cx-(w-1)/2, cy-(h-1)/2
	glyph := glyphs[sp.Kind]
	color := sp.Kind.Color()

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if v.inner.Contains(x, y) {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		drawCentered(dst, dst.Height()/2, "Terminal too small", core.ColorRed)
		drawCentered(dst, dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	v := newViewport(g.snap.Arena, dst.Width(), dst.Height())
	dst.DrawBox(v.frame, core.ColorDarkGray)

	// Bullets first so ships stay visible when they overlap
	for _, sp := range g.snap.Sprites {
		if sp.Kind == shooter.KindPlayerBullet || sp.Kind == shooter.KindEnemyBullet {
			v.drawSprite(dst, sp)
		}
	}
	for _, sp := range g.snap.Sprites {
		if sp.Kind == shooter.KindPlayer || sp.Kind == shooter.KindEnemy {
			v.drawSprite(dst, sp)
		}
	}

	g.drawHUD(dst, v)

	if g.paused {
		drawMessage(dst, "PAUSED", "Press P to resume")
	} else if !g.snap.PlayerAlive && g.snap.Tick > 0 {
		drawCentered(dst, v.inner.Y+v.inner.H/2, "respawning", core.ColorGray)
	}
}

// drawHUD writes the score above the playfield and the wing size beside it.
func (g *Game) drawHUD(dst *core.Screen, v viewport) {
	drawCentered(dst, 0, fmt.Sprintf("SCORE %d", g.snap.Score), shooter.ScoreColor)

	wing := fmt.Sprintf("%d/%d", g.snap.LiveEnemies, g.snap.MaxEnemies)
	x := v.frame.Right() - len(wing)
	if x > v.frame.X {
		dst.DrawTextColored(x, 0, wing, shooter.KindEnemy.Color())
	}
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	drawCentered(dst, box.Y+1, title, core.ColorBrightWhite)
	drawCentered(dst, box.Y+3, subtitle, core.ColorGray)
}
