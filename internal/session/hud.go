package session

import (
	"fmt"
	"image/color"

	"github.com/mikenye/skysnake/internal/decor"
	"github.com/mikenye/skysnake/internal/input"
)

var (
	snakeColor    = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	foodColor     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	titleColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 77}
	scoreBoxColor = color.NRGBA{A: 178}
	scoreColor    = color.NRGBA{G: 255, A: 255}
	padColor      = color.NRGBA{R: 28, G: 28, B: 38, A: 255}
	buttonColor   = color.NRGBA{R: 64, G: 64, B: 84, A: 255}
	heldColor     = color.NRGBA{R: 0, G: 200, B: 90, A: 255}
	glyphColor    = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	modalColor    = color.NRGBA{R: 18, G: 18, B: 28, A: 255}
	modalText     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	modalHint     = color.NRGBA{R: 170, G: 170, B: 170, A: 255}
)

// text sizes and spacing, in pixels
const (
	titleSize    = 48
	scoreSize    = 20
	scorePadding = 15
	glyphSize    = 24
	modalSize    = 24
	hintSize     = 14
	tileGap      = 2
)

func (s *Session) drawTitle(sf Surface) {
	if s.opts.Title == "" {
		return
	}
	w, h := sf.MeasureText(s.opts.Title, titleSize)
	sf.Text(s.opts.Title, (float64(s.width)-w)/2, (float64(s.height)-h)/2, titleSize, titleColor)
}

// draw the snake and the food, one rect per tile
func (s *Session) drawBoard(sf Surface) {
	snap := s.game.Snapshot()
	edge := float64(s.opts.TileEdge)
	for _, seg := range snap.Body {
		sf.FillRect(float64(seg.X)*edge, float64(seg.Y)*edge, edge-tileGap, edge-tileGap, snakeColor)
	}
	sf.FillRect(float64(snap.Food.X)*edge, float64(snap.Food.Y)*edge, edge-tileGap, edge-tileGap, foodColor)
}

// draw the score in a dark box in the top right corner
func (s *Session) drawScore(sf Surface) {
	txt := fmt.Sprintf("Score: %d", s.game.Score())
	tw, _ := sf.MeasureText(txt, scoreSize)
	w := float64(s.width)
	sf.FillRect(w-tw-scorePadding*3, scorePadding, tw+scorePadding*2, scoreSize+scorePadding*2, scoreBoxColor)
	sf.Text(txt, w-tw-scorePadding*2, scorePadding*2, scoreSize, scoreColor)
}

// draw the on-screen arrow pad, lighting up held keys
func (s *Session) drawPanel(sf Surface) {
	p := s.Panel()
	px, py, pw, ph := p.Bounds()
	fillRoundRect(sf, px, py, pw, ph, p.Gap*2, padColor)
	for _, d := range input.Directions {
		x, y, size := p.Button(d)
		col := buttonColor
		if s.input.Held(d) {
			col = heldColor
		}
		fillRoundRect(sf, x, y, size, size, size/6, col)
		glyph := glyphs[d]
		gw, gh := sf.MeasureText(glyph, glyphSize)
		sf.Text(glyph, x+(size-gw)/2, y+(size-gh)/2, glyphSize, glyphColor)
	}
}

var glyphs = map[input.Direction]string{
	input.Up:    "↑",
	input.Down:  "↓",
	input.Left:  "←",
	input.Right: "→",
}

// DrawModal paints the game over notice on top of the last frame. It does
// nothing while the round is still running.
func (s *Session) DrawModal(sf Surface) {
	score, over := s.Over()
	if !over {
		return
	}
	const mw, mh = 360.0, 140.0
	x := (float64(s.width) - mw) / 2
	y := (float64(s.height) - mh) / 2
	fillRoundRect(sf, x, y, mw, mh, 12, modalColor)

	msg := fmt.Sprintf("Game Over! Score: %d", score)
	tw, th := sf.MeasureText(msg, modalSize)
	sf.Text(msg, x+(mw-tw)/2, y+mh/2-th-4, modalSize, modalText)

	hint := "press Enter to play again"
	hw, _ := sf.MeasureText(hint, hintSize)
	sf.Text(hint, x+(mw-hw)/2, y+mh/2+8, hintSize, modalHint)
}

// fillRoundRect paints a rounded rectangle out of three rects and four
// corner discs. Overlaps would double up translucent colours, so callers
// pass opaque ones.
func fillRoundRect(c decor.Canvas, x, y, w, h, r float64, col color.Color) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		c.FillRect(x, y, w, h, col)
		return
	}
	c.FillRect(x+r, y, w-2*r, h, col)
	c.FillRect(x, y+r, r, h-2*r, col)
	c.FillRect(x+w-r, y+r, r, h-2*r, col)
	c.FillCircle(x+r, y+r, r, col)
	c.FillCircle(x+w-r, y+r, r, col)
	c.FillCircle(x+r, y+h-r, r, col)
	c.FillCircle(x+w-r, y+h-r, r, col)
}
