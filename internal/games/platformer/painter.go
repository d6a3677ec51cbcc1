package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '█'
	BrickChar    = '▓'
	QuestionChar = '?'
	BlockChar    = '▒'
	PipeChar     = '█'
	PipeRimChar  = '▀'
	PoleChar     = '│'
	FlagChar     = '▶'
	CloudChar    = '░'
	HillChar     = '▲'
	BushChar     = '♣'
	HostileChar  = '●'
	FlatChar     = '▁'
	PlayerChar   = '█'
	PlayerCap    = '▀'
)

var coinFrames = [...]rune{'O', '0', '|', '0'}

// hudRows is the number of rows above the playfield reserved for the HUD.
const hudRows = 1

// screenPainter draws a frame onto a terminal cell buffer. The logical
// viewport is scaled to whatever size the buffer has.
type screenPainter struct {
	dst     *core.Screen
	cameraX float64
	scaleX  float64 // world units per column
	scaleY  float64 // world units per row
}

func newScreenPainter(dst *core.Screen, viewportW, viewportH float64) *screenPainter {
	cols := max(1, dst.Width())
	rows := max(1, dst.Height()-hudRows)
	return &screenPainter{
		dst:    dst,
		scaleX: viewportW / float64(cols),
		scaleY: viewportH / float64(rows),
	}
}

func (sp *screenPainter) BeginFrame(cameraX float64) {
	sp.cameraX = cameraX
}

// cells maps a world box to the screen. Boxes always cover at least one
// cell. ok is false when the box is off screen.
func (sp *screenPainter) cells(x, y, w, h, parallax float64) (r core.Rect, ok bool) {
	sx := x - sp.cameraX*parallax
	x0 := int(math.Floor(sx / sp.scaleX))
	x1 := int(math.Ceil((sx + w) / sp.scaleX))
	y0 := int(math.Floor(y/sp.scaleY)) + hudRows
	y1 := int(math.Ceil((y+h)/sp.scaleY)) + hudRows

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	if x1 <= 0 || x0 >= sp.dst.Width() || y1 <= hudRows || y0 >= sp.dst.Height() {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

func (sp *screenPainter) DrawDecoration(d Decoration) {
	switch d.Kind {
	case DecorationCloud:
		w, h := 100*d.Scale, 40*d.Scale
		if r, ok := sp.cells(d.X, d.Y-h/2, w, h, d.Parallax()); ok {
			sp.dst.DrawRectColor(r, CloudChar, core.ColorWhite)
		}
	case DecorationHill:
		w, h := 200*d.Scale, 100*d.Scale
		if r, ok := sp.cells(d.X, d.Y-h, w, h, d.Parallax()); ok {
			sp.drawMound(r, HillChar, core.ColorGreen)
		}
	case DecorationBush:
		w, h := 75*d.Scale, 25*d.Scale
		if r, ok := sp.cells(d.X, d.Y-h, w, h, d.Parallax()); ok {
			sp.dst.DrawRectColor(r, BushChar, core.ColorBrightGreen)
		}
	}
}

// drawMound fills r as a triangle narrowing toward the top row.
func (sp *screenPainter) drawMound(r core.Rect, ch rune, c core.Color) {
	for row := 0; row < r.H; row++ {
		inset := (r.H - 1 - row) * r.W / (2 * r.H)
		for x := r.X + inset; x < r.Right()-inset; x++ {
			sp.dst.SetColor(x, r.Y+row, ch, c)
		}
	}
}

func (sp *screenPainter) DrawObstacle(o Obstacle) {
	b := o.Box
	r, ok := sp.cells(b.X, b.Y, b.W(), b.H(), 1)
	if !ok {
		return
	}

	switch o.Kind {
	case ObstacleGround:
		sp.dst.DrawRectColor(r, GroundChar, core.ColorBrown)
	case ObstacleBrick:
		sp.dst.DrawRectColor(r, BrickChar, core.ColorOrange)
	case ObstacleQuestion:
		sp.dst.DrawRectColor(r, BlockChar, core.ColorYellow)
		sp.dst.SetColor(r.X+r.W/2, r.Y+r.H/2, QuestionChar, core.ColorBrightWhite)
	case ObstaclePipe:
		sp.dst.DrawRectColor(r, PipeChar, core.ColorGreen)
		for x := r.X; x < r.Right(); x++ {
			sp.dst.SetColor(x, r.Y, PipeRimChar, core.ColorBrightGreen)
		}
	case ObstaclePole:
		for y := r.Y; y < r.Bottom(); y++ {
			sp.dst.SetColor(r.X, y, PoleChar, core.ColorGray)
		}
		sp.dst.SetColor(r.X+1, r.Y, FlagChar, core.ColorBrightGreen)
	}
}

func (sp *screenPainter) DrawCollectible(c Collectible) {
	r, ok := sp.cells(c.X, c.Y, c.W(), c.H(), 1)
	if !ok {
		return
	}
	sp.dst.DrawRectColor(r, coinFrames[c.Frame%len(coinFrames)], core.ColorBrightYellow)
}

func (sp *screenPainter) DrawHostile(h Hostile) {
	r, ok := sp.cells(h.X, h.Y, h.W(), h.H(), 1)
	if !ok {
		return
	}
	if h.Defeated {
		r.Y = r.Bottom() - 1
		r.H = 1
		sp.dst.DrawRectColor(r, FlatChar, core.ColorBrown)
		return
	}
	sp.dst.DrawRectColor(r, HostileChar, core.ColorBrown)
}

func (sp *screenPainter) DrawPlayer(p Player) {
	r, ok := sp.cells(p.X, p.Y, p.W(), p.H(), 1)
	if !ok {
		return
	}
	sp.dst.DrawRectColor(r, PlayerChar, core.ColorBrightRed)

	// Cap on the leading side
	capX := r.X
	if p.FacingRight {
		capX = r.Right() - 1
	}
	sp.dst.SetColor(capX, r.Y, PlayerCap, core.ColorRed)

	// Legs alternate while walking on the ground
	if r.H > 1 && !p.Airborne && p.Moving() && p.Frame == 1 {
		sp.dst.SetColor(r.X+r.W/2, r.Bottom()-1, ' ', core.ColorDefault)
	}
}

// drawHUD writes the score line across the top row.
func drawHUD(dst *core.Screen, hud HUD) {
	line := fmt.Sprintf(" SCORE %06d   COINS x%02d   TIME %3d   LIVES x%d ",
		hud.Score, hud.Coins, hud.Time, hud.Lives)
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawTextCentered(0, line, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

func fmtScoreLine(score int) string {
	return fmt.Sprintf("Score: %d  |  Press R to restart", score)
}
