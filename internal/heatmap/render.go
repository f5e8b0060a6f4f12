package heatmap

import (
	"context"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"varheat/internal/matrix"
)

var (
	white   = color.RGBA{255, 255, 255, 255}
	black   = color.RGBA{0, 0, 0, 255}
	hatchFg = color.RGBA{150, 150, 150, 255}
)

// Report describes what was actually drawn.
type Report struct {
	Colormap  string
	Typeface  string
	Fallbacks []Fallback
	Domain    Domain
	Width     int
	Height    int
}

// Figure is a drawn heatmap before encoding.
type Figure struct {
	Image    *image.RGBA
	Grid     image.Rectangle // plotted cell area, inside the border
	Colorbar image.Rectangle
	Report   Report
}

// Draw renders n with st. It fails only on an unusable Style.
func Draw(n *matrix.Normalized, st Style) (*Figure, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	rep := Report{}

	scale, fb := ResolveScale(st.Colormap, st.FallbackColormap)
	if fb != nil {
		rep.Fallbacks = append(rep.Fallbacks, *fb)
	}
	rep.Colormap = scale.Name

	tf, fb := ResolveTypeface(st.FontFamily, st.FontDirs, st.FontSize, st.DPI)
	defer tf.Close()
	if fb != nil {
		rep.Fallbacks = append(rep.Fallbacks, *fb)
	}
	rep.Typeface = tf.Name

	lo, hi, ok := n.Range()
	if !ok {
		lo, hi = -1, 1
	}
	dom := NewDomain(lo, hi)
	rep.Domain = dom

	ticks, tickLabels := colorbarTicks(dom.Min, dom.Max)

	p := newPen(tf.Face, black)
	rows, cols := n.RowLabels(), n.ColLabels()
	l := computeLayout(st, p, rows, cols, tickLabels)

	img := image.NewRGBA(l.canvas)
	fill(img, l.canvas, white)

	// cells
	r, c := n.Rows(), n.Cols()
	hatch := st.pt(6)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rect := l.cell(i, j, r, c)
			cell := n.At(i, j)
			if !cell.Valid {
				hatchFill(img, rect, hatch, st.pt(0.8))
				continue
			}
			fill(img, rect, scale.At(dom.Position(cell.Value)))
		}
	}
	frame(img, l.grid, l.border)

	// colorbar, top value at the top
	cb := l.colorbar
	for y := cb.Min.Y; y < cb.Max.Y; y++ {
		t := 1 - (float64(y-cb.Min.Y)+0.5)/float64(cb.Dy())
		v := dom.Min + t*(dom.Max-dom.Min)
		fill(img, image.Rect(cb.Min.X, y, cb.Max.X, y+1), scale.At(dom.Position(v)))
	}
	frame(img, cb, l.border)
	tickW := st.pt(0.8)
	for i, v := range ticks {
		t := (v - dom.Min) / (dom.Max - dom.Min)
		y := cb.Max.Y - int(math.Round(t*float64(cb.Dy())))
		x0 := cb.Max.X + l.border
		fill(img, image.Rect(x0, y-tickW/2, x0+l.tickLen, y-tickW/2+tickW), black)
		p.text(img, tickLabels[i], x0+l.tickLen+l.pad, y+(p.ascent-p.descent)/2)
	}
	if st.Caption != "" {
		p.rotated(img, st.Caption, 90, pivotCenter, float64(l.captionX), float64(cb.Min.Y+cb.Dy()/2))
	}

	// tick labels: every row and every column
	labelRight := l.grid.Min.X - l.border - l.pad
	for i, lab := range rows {
		rect := l.cell(i, 0, r, c)
		p.rightAligned(img, lab, labelRight, (rect.Min.Y+rect.Max.Y)/2)
	}
	for j, lab := range cols {
		rect := l.cell(0, j, r, c)
		cx := float64(rect.Min.X+rect.Max.X) / 2
		if st.ColumnLabelRotation == 0 {
			p.text(img, lab, int(cx)-p.width(lab)/2, l.colLabelTop+p.ascent)
			continue
		}
		p.rotated(img, lab, st.ColumnLabelRotation, pivotRightMiddle, cx, float64(l.colLabelTop))
	}

	// title and axis labels
	gcx := (l.grid.Min.X + l.grid.Max.X) / 2
	gcy := (l.grid.Min.Y + l.grid.Max.Y) / 2
	if st.Title != "" {
		p.text(img, st.Title, gcx-p.width(st.Title)/2, l.titleY)
	}
	if st.XLabel != "" {
		p.text(img, st.XLabel, gcx-p.width(st.XLabel)/2, l.xLabelY)
	}
	if st.YLabel != "" {
		p.rotated(img, st.YLabel, 90, pivotCenter, float64(l.yLabelX), float64(gcy))
	}

	rep.Width, rep.Height = l.canvas.Dx(), l.canvas.Dy()
	return &Figure{Image: img, Grid: l.grid, Colorbar: cb, Report: rep}, nil
}

// Render draws n and writes it as a PNG to path.
func Render(ctx context.Context, n *matrix.Normalized, st Style, path string) (Report, error) {
	fig, err := Draw(n, st)
	if err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return fig.Report, err
	}
	if err := WritePNG(path, fig.Image, st.DPI); err != nil {
		return fig.Report, err
	}
	return fig.Report, nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	xdraw.Draw(img, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

// frame strokes a border of width w just outside r.
func frame(img *image.RGBA, r image.Rectangle, w int) {
	if w <= 0 {
		return
	}
	o := r.Inset(-w)
	fill(img, image.Rect(o.Min.X, o.Min.Y, o.Max.X, r.Min.Y), black)
	fill(img, image.Rect(o.Min.X, r.Max.Y, o.Max.X, o.Max.Y), black)
	fill(img, image.Rect(o.Min.X, r.Min.Y, r.Min.X, r.Max.Y), black)
	fill(img, image.Rect(r.Max.X, r.Min.Y, o.Max.X, r.Max.Y), black)
}

// hatchFill marks a missing cell: white with diagonal grey lines.
func hatchFill(img *image.RGBA, r image.Rectangle, period, thick int) {
	fill(img, r, white)
	if period < 2 {
		period = 2
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if (x+y)%period < thick {
				img.SetRGBA(x, y, hatchFg)
			}
		}
	}
}
