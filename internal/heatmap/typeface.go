package heatmap

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FallbackTypeface names the embedded face used when the requested family
// cannot be found.
const FallbackTypeface = "Go Regular"

// Typeface is a resolved font at a fixed size and DPI.
type Typeface struct {
	Name string
	Face font.Face
}

// Close releases the face.
func (t Typeface) Close() error {
	if c, ok := t.Face.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// ResolveTypeface looks for a TrueType/OpenType file named after family
// (case, spaces, '-' and '_' ignored) under dirs, and falls back to the
// embedded Go Regular face. The returned Fallback is nil when the requested
// family was used.
func ResolveTypeface(family string, dirs []string, size float64, dpi int) (Typeface, *Fallback) {
	if path := findFontFile(family, dirs); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if face, err := newFace(data, size, dpi); err == nil {
				return Typeface{Name: family, Face: face}, nil
			}
		}
	}
	fb := &Fallback{Resource: "typeface", Requested: family, Used: FallbackTypeface}
	face, err := newFace(goregular.TTF, size, dpi)
	if err != nil {
		fb.Used = "basicfont 7x13"
		return Typeface{Name: fb.Used, Face: basicfont.Face7x13}, fb
	}
	return Typeface{Name: FallbackTypeface, Face: face}, fb
}

func newFace(data []byte, size float64, dpi int) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     float64(dpi),
		Hinting: font.HintingFull,
	})
}

func fontKey(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
}

// findFontFile walks dirs in order and returns the first matching file, or "".
func findFontFile(family string, dirs []string) string {
	want := fontKey(family)
	if want == "" {
		return ""
	}
	var found string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".ttf" && ext != ".otf" {
				return nil
			}
			if fontKey(strings.TrimSuffix(d.Name(), filepath.Ext(path))) == want {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found
		}
	}
	return ""
}
