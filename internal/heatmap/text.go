package heatmap

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// pen draws single-line labels with one face and color.
type pen struct {
	face    font.Face
	col     color.Color
	ascent  int
	descent int
}

func newPen(face font.Face, col color.Color) pen {
	m := face.Metrics()
	return pen{face: face, col: col, ascent: m.Ascent.Ceil(), descent: m.Descent.Ceil()}
}

func (p pen) lineHeight() int { return p.ascent + p.descent }

func (p pen) width(s string) int { return font.MeasureString(p.face, s).Ceil() }

func (p pen) maxWidth(ss []string) int {
	w := 0
	for _, s := range ss {
		if v := p.width(s); v > w {
			w = v
		}
	}
	return w
}

// text draws s with its baseline starting at (x, y).
func (p pen) text(dst xdraw.Image, s string, x, y int) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(p.col), Face: p.face, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

// rightAligned draws s ending at x, vertically centered on cy.
func (p pen) rightAligned(dst xdraw.Image, s string, x, cy int) {
	p.text(dst, s, x-p.width(s), cy+(p.ascent-p.descent)/2)
}

// Pivot selects the point of the text box that lands on the anchor.
type pivot int

const (
	pivotCenter pivot = iota
	pivotRightMiddle
)

// rotated draws s turned counter-clockwise by deg degrees so that the chosen
// pivot of its box lands on (ax, ay).
func (p pen) rotated(dst xdraw.Image, s string, deg float64, pv pivot, ax, ay float64) {
	w, h := p.width(s), p.lineHeight()
	if w == 0 || h == 0 {
		return
	}
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	p.text(src, s, 0, p.ascent)

	var px, py float64
	switch pv {
	case pivotRightMiddle:
		px, py = float64(w), float64(h)/2
	default:
		px, py = float64(w)/2, float64(h)/2
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	// dst = R(θ)·(src − pivot) + anchor, with y growing downwards
	s2d := f64.Aff3{
		cos, sin, ax - cos*px - sin*py,
		-sin, cos, ay + sin*px - cos*py,
	}
	xdraw.BiLinear.Transform(dst, s2d, src, src.Bounds(), xdraw.Over, nil)
}

// rotatedDrop is how far a label rotated by deg about its right-middle point
// reaches below the anchor, plus how far it rises above it.
func rotatedDrop(w, h int, deg float64) (below, above int) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	below = int(math.Ceil(math.Abs(sin)*float64(w) + math.Abs(cos)*float64(h)/2))
	above = int(math.Ceil(math.Abs(cos) * float64(h) / 2))
	return below, above
}
