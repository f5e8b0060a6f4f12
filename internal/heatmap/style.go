package heatmap

import (
	"fmt"
	"math"
)

// Style holds every fixed visual parameter of the renderer. The env tags let
// config.ParseEnv override them (with a VARHEAT_ prefix added by the caller).
type Style struct {
	Width  float64 `env:"FIG_WIDTH" envDefault:"5"`  // inches
	Height float64 `env:"FIG_HEIGHT" envDefault:"5"` // inches
	DPI    int     `env:"DPI" envDefault:"300"`

	Colormap         string `env:"COLORMAP" envDefault:"PuGn"`
	FallbackColormap string `env:"FALLBACK_COLORMAP" envDefault:"PuBuGn"`

	Title   string `env:"TITLE" envDefault:"gene top 10"`
	XLabel  string `env:"XLABEL" envDefault:"gene"`
	YLabel  string `env:"YLABEL" envDefault:"conditions"`
	Caption string `env:"CAPTION" envDefault:"gene expression is log scale"`

	FontFamily string   `env:"FONT" envDefault:"Times New Roman"`
	FontSize   float64  `env:"FONT_SIZE" envDefault:"11"` // points
	FontDirs   []string `env:"FONT_PATH" envSeparator:":" envDefault:"/usr/share/fonts:/usr/local/share/fonts:/Library/Fonts:/System/Library/Fonts"`

	BorderWidth         float64 `env:"BORDER_WIDTH" envDefault:"1"` // points
	ColumnLabelRotation float64 `env:"XTICK_ROTATION" envDefault:"45"`
}

// DefaultStyle mirrors the envDefault tags above.
func DefaultStyle() Style {
	return Style{
		Width:               5,
		Height:              5,
		DPI:                 300,
		Colormap:            "PuGn",
		FallbackColormap:    "PuBuGn",
		Title:               "gene top 10",
		XLabel:              "gene",
		YLabel:              "conditions",
		Caption:             "gene expression is log scale",
		FontFamily:          "Times New Roman",
		FontSize:            11,
		FontDirs:            []string{"/usr/share/fonts", "/usr/local/share/fonts", "/Library/Fonts", "/System/Library/Fonts"},
		BorderWidth:         1,
		ColumnLabelRotation: 45,
	}
}

// Pixels returns the canvas size in pixels.
func (s Style) Pixels() (w, h int) {
	return int(math.Round(s.Width * float64(s.DPI))), int(math.Round(s.Height * float64(s.DPI)))
}

// pt converts points to pixels at the style's DPI, never below one pixel.
func (s Style) pt(points float64) int {
	v := int(math.Round(points * float64(s.DPI) / 72))
	if v < 1 {
		return 1
	}
	return v
}

func (s Style) validate() error {
	w, h := s.Pixels()
	switch {
	case s.DPI <= 0:
		return fmt.Errorf("%w: dpi %d", ErrBadStyle, s.DPI)
	case w < 32 || h < 32:
		return fmt.Errorf("%w: canvas %dx%d px is too small", ErrBadStyle, w, h)
	case w > 20000 || h > 20000:
		return fmt.Errorf("%w: canvas %dx%d px is too large", ErrBadStyle, w, h)
	case s.FontSize <= 0:
		return fmt.Errorf("%w: font size %g", ErrBadStyle, s.FontSize)
	case s.BorderWidth < 0:
		return fmt.Errorf("%w: border width %g", ErrBadStyle, s.BorderWidth)
	}
	return nil
}
