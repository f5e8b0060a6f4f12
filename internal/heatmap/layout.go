package heatmap

import "image"

// layout holds the pixel geometry of one figure.
type layout struct {
	canvas   image.Rectangle
	grid     image.Rectangle
	colorbar image.Rectangle

	margin, pad, tickLen, border int

	colLabelTop int // anchor y for rotated column labels
	yLabelX     int // center x of the rotated Y label
	captionX    int // center x of the rotated colorbar caption
	titleY      int // baseline
	xLabelY     int // baseline
}

// computeLayout sizes the grid to whatever room the labels leave, matching
// a tight layout: title on top, rotated column labels and the X label below,
// Y label and row labels left, colorbar with ticks and caption right.
func computeLayout(st Style, p pen, rowLabels, colLabels, tickLabels []string) layout {
	w, h := st.Pixels()
	l := layout{
		canvas:  image.Rect(0, 0, w, h),
		margin:  st.pt(4),
		pad:     st.pt(3.5),
		tickLen: st.pt(3.5),
		border:  0,
	}
	if st.BorderWidth > 0 {
		l.border = st.pt(st.BorderWidth)
	}
	lh := p.lineHeight()

	colW := p.maxWidth(colLabels)
	below, above := rotatedDrop(colW, lh, st.ColumnLabelRotation)

	top := l.margin
	if st.Title != "" {
		top += lh + st.pt(6)
	}
	left := l.margin + p.maxWidth(rowLabels) + l.pad + l.border
	if st.YLabel != "" {
		left += lh + l.pad
	}
	bottom := l.margin + l.border + l.pad + above + below
	if st.XLabel != "" {
		bottom += lh + l.pad
	}
	rightFixed := l.margin + l.pad + l.tickLen + p.maxWidth(tickLabels) + l.pad + 2*l.border
	if st.Caption != "" {
		rightFixed += lh + l.pad
	}
	gap := st.pt(7)

	// colorbar takes a fixed fraction of what remains horizontally
	avail := w - left - rightFixed - gap
	cbarW := avail * 46 / 1000
	if cbarW < st.pt(4) {
		cbarW = st.pt(4)
	}
	gridRight := w - rightFixed - gap - cbarW
	gridBottom := h - bottom

	// keep a usable grid even when the labels would eat the canvas
	minW, minH := w/10, h/10
	if gridRight-left < minW {
		gridRight = left + minW
	}
	if gridBottom-top < minH {
		gridBottom = top + minH
	}

	l.grid = image.Rect(left, top, gridRight, gridBottom)
	l.colorbar = image.Rect(gridRight+gap, top, gridRight+gap+cbarW, gridBottom)

	l.colLabelTop = gridBottom + l.border + l.pad + above
	l.yLabelX = l.margin + lh/2
	l.captionX = l.colorbar.Max.X + l.border + l.tickLen + l.pad + p.maxWidth(tickLabels) + l.pad + lh/2
	l.titleY = l.margin + p.ascent
	l.xLabelY = h - l.margin - p.descent
	return l
}

// cell returns the pixel rectangle of cell (i, j) in an r×c grid.
func (l layout) cell(i, j, r, c int) image.Rectangle {
	g := l.grid
	x0 := g.Min.X + j*g.Dx()/c
	x1 := g.Min.X + (j+1)*g.Dx()/c
	y0 := g.Min.Y + i*g.Dy()/r
	y1 := g.Min.Y + (i+1)*g.Dy()/r
	return image.Rect(x0, y0, x1, y1)
}
