package output

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary describes a run's shape, with counts grouped for tag.
func Summary(tag language.Tag, rows, cols, selected int) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("Loaded %d rows × %d columns; selected %d", rows, cols, selected)
}

// WriteSummary writes Summary in English followed by a newline.
func WriteSummary(w io.Writer, rows, cols, selected int) error {
	_, err := io.WriteString(w, Summary(language.English, rows, cols, selected)+"\n")
	return err
}
