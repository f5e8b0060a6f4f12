package matrix

import "fmt"

// Labeled is a row-major table of cells with one unique label per row and
// per column.
type Labeled struct {
	rows  []string
	cols  []string
	cells []Cell
}

// New builds a Labeled from labels and row-major cells. The slices are copied.
func New(rows, cols []string, cells []Cell) (*Labeled, error) {
	if len(cells) != len(rows)*len(cols) {
		return nil, fmt.Errorf("%w: %d cells for %d×%d", ErrDimensionMismatch, len(cells), len(rows), len(cols))
	}
	if err := unique(rows); err != nil {
		return nil, fmt.Errorf("row %w", err)
	}
	if err := unique(cols); err != nil {
		return nil, fmt.Errorf("column %w", err)
	}
	return &Labeled{
		rows:  append([]string(nil), rows...),
		cols:  append([]string(nil), cols...),
		cells: append([]Cell(nil), cells...),
	}, nil
}

func unique(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateLabel, l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

func (m *Labeled) Rows() int { return len(m.rows) }
func (m *Labeled) Cols() int { return len(m.cols) }

// RowLabels returns a copy of the row labels in display order.
func (m *Labeled) RowLabels() []string { return append([]string(nil), m.rows...) }

// ColLabels returns a copy of the column labels in display order.
func (m *Labeled) ColLabels() []string { return append([]string(nil), m.cols...) }

// RowLabel returns the label of row i.
func (m *Labeled) RowLabel(i int) string { return m.rows[i] }

// At returns the cell at (i, j). It panics on an out-of-range index.
func (m *Labeled) At(i, j int) Cell {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.cols) {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range %d×%d", i, j, len(m.rows), len(m.cols)))
	}
	return m.cells[i*len(m.cols)+j]
}

// Row returns a copy of row i.
func (m *Labeled) Row(i int) []Cell {
	c := len(m.cols)
	return append([]Cell(nil), m.cells[i*c:(i+1)*c]...)
}

// SelectRows returns a new matrix holding rows idx, in the order given.
func (m *Labeled) SelectRows(idx []int) *Labeled {
	c := len(m.cols)
	out := &Labeled{
		rows:  make([]string, 0, len(idx)),
		cols:  append([]string(nil), m.cols...),
		cells: make([]Cell, 0, len(idx)*c),
	}
	for _, i := range idx {
		out.rows = append(out.rows, m.rows[i])
		out.cells = append(out.cells, m.cells[i*c:(i+1)*c]...)
	}
	return out
}
