package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"varheat/internal/matrix"
)

const bom = "\uFEFF"

// LoadFile opens path ("-" for stdin, gzip detected) and loads it with Load.
func LoadFile(path string) (*matrix.Labeled, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", matrix.ErrDataUnavailable, path, unwrapPath(err))
	}
	defer rc.Close()

	m, err := Load(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// unwrapPath drops the *PathError wrapper so the path is not printed twice.
func unwrapPath(err error) error {
	if u := errors.Unwrap(err); u != nil {
		return u
	}
	return err
}

// Load parses a header line plus labeled rows from r, coerces every field,
// and drops all-missing columns and then all-missing rows.
func Load(r io.Reader) (*matrix.Labeled, error) {
	br := bufio.NewReader(r)

	var (
		header []string
		rows   []string
		table  [][]matrix.Cell
	)
	first := true
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: %v", matrix.ErrDataUnavailable, err)
		}
		eof := err == io.EOF
		if first {
			line = strings.TrimPrefix(line, bom)
		}
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) != "" {
			f := strings.Split(line, "\t")
			if first {
				header = columnNames(f[1:])
				first = false
			} else {
				rows = append(rows, f[0])
				table = append(table, coerceRow(f[1:], len(header)))
			}
		}
		if eof {
			break
		}
	}
	if len(header) == 0 || len(rows) == 0 {
		return nil, matrix.ErrEmptyMatrix
	}

	keepCols := liveColumns(table, len(header))
	if len(keepCols) == 0 {
		return nil, matrix.ErrEmptyMatrix
	}

	cols := make([]string, len(keepCols))
	for k, j := range keepCols {
		cols[k] = header[j]
	}

	var (
		keptRows []string
		cells    []matrix.Cell
	)
	row := make([]matrix.Cell, len(keepCols))
	for i, rec := range table {
		for k, j := range keepCols {
			row[k] = rec[j]
		}
		if matrix.AllMissing(row) {
			continue
		}
		keptRows = append(keptRows, rows[i])
		cells = append(cells, row...)
	}
	if len(keptRows) == 0 {
		return nil, matrix.ErrEmptyMatrix
	}

	return matrix.New(dedupe(keptRows), cols, cells)
}

// columnNames names every data column, filling blanks the way dataframe
// readers do and making duplicates unique.
func columnNames(f []string) []string {
	out := make([]string, len(f))
	for j, name := range f {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(j+1)
		}
		out[j] = name
	}
	return dedupe(out)
}

// coerceRow converts fields to cells, padding short rows with missing cells
// and ignoring fields past width.
func coerceRow(f []string, width int) []matrix.Cell {
	out := make([]matrix.Cell, width)
	for j := 0; j < width && j < len(f); j++ {
		out[j] = parseCell(f[j])
	}
	return out
}

// parseCell reads a decimal number. Go-only literal forms (hex floats,
// digit separators) are not numbers in a data file and read as missing.
func parseCell(s string) matrix.Cell {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "_") {
		return matrix.Missing()
	}
	if u := strings.TrimLeft(s, "+-"); strings.HasPrefix(u, "0x") || strings.HasPrefix(u, "0X") {
		return matrix.Missing()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return matrix.Missing()
	}
	return matrix.Num(v)
}

// liveColumns returns the indexes of columns with at least one present cell.
func liveColumns(table [][]matrix.Cell, width int) []int {
	var keep []int
	for j := 0; j < width; j++ {
		for _, rec := range table {
			if rec[j].Valid {
				keep = append(keep, j)
				break
			}
		}
	}
	return keep
}

// dedupe suffixes repeated labels with .1, .2, … in order of appearance;
// the first occurrence keeps its name.
func dedupe(labels []string) []string {
	out := make([]string, len(labels))
	seen := make(map[string]int, len(labels))
	taken := make(map[string]bool, len(labels))
	for _, l := range labels {
		taken[l] = true
	}
	for i, l := range labels {
		n, dup := seen[l]
		seen[l] = n + 1
		if !dup {
			out[i] = l
			continue
		}
		name := fmt.Sprintf("%s.%d", l, n)
		for taken[name] {
			n++
			name = fmt.Sprintf("%s.%d", l, n)
		}
		seen[l] = n + 1
		taken[name] = true
		out[i] = name
	}
	return out
}
