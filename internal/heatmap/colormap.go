package heatmap

import (
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/palette/brewer"
)

// Scale is a continuous colormap: the classes of a ColorBrewer palette as
// evenly spaced stops, linearly interpolated in RGB.
type Scale struct {
	Name  string
	stops []color.RGBA
}

// At returns the color at t in [0,1]; t is clamped.
func (s Scale) At(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	n := len(s.stops) - 1
	x := t * float64(n)
	i := int(x)
	if i >= n {
		return s.stops[n]
	}
	f := x - float64(i)
	a, b := s.stops[i], s.stops[i+1]
	lerp := func(p, q uint8) uint8 { return uint8(math.Round(float64(p) + f*(float64(q)-float64(p)))) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// Center returns the color 0 is drawn with.
func (s Scale) Center() color.RGBA { return s.At(0.5) }

func (s Scale) reversed() Scale {
	st := make([]color.RGBA, len(s.stops))
	for i, c := range s.stops {
		st[len(st)-1-i] = c
	}
	return Scale{Name: s.Name + "_r", stops: st}
}

// brewerClasses are tried largest first: sequential ColorBrewer palettes
// stop at 9 classes, diverging ones at 11.
var brewerClasses = []int{11, 10, 9, 8, 7, 6, 5, 4, 3}

func brewerStops(name string) ([]color.RGBA, bool) {
	for _, n := range brewerClasses {
		p, err := brewer.GetPalette(brewer.TypeAny, name, n)
		if err != nil {
			continue
		}
		cs := p.Colors()
		if len(cs) < 2 {
			return nil, false
		}
		stops := make([]color.RGBA, len(cs))
		for k, c := range cs {
			stops[k] = color.RGBAModel.Convert(c).(color.RGBA)
		}
		return stops, true
	}
	return nil, false
}

// LookupScale returns the named ColorBrewer palette as a continuous map,
// accepting a "_r" suffix for the reversed map.
func LookupScale(name string) (Scale, bool) {
	base, rev := name, false
	if strings.HasSuffix(name, "_r") {
		base, rev = strings.TrimSuffix(name, "_r"), true
	}
	stops, ok := brewerStops(base)
	if !ok {
		return Scale{}, false
	}
	s := Scale{Name: base, stops: stops}
	if rev {
		s = s.reversed()
	}
	return s, true
}

// DefaultFallbackScale is used when neither the requested nor the configured
// fallback colormap exists.
const DefaultFallbackScale = "PuBuGn"

// ResolveScale returns the requested colormap, or the fallback and a
// Fallback record describing the substitution. It never fails.
func ResolveScale(name, fallback string) (Scale, *Fallback) {
	if s, ok := LookupScale(name); ok {
		return s, nil
	}
	s, ok := LookupScale(fallback)
	if !ok {
		s, _ = LookupScale(DefaultFallbackScale)
	}
	return s, &Fallback{Resource: "colormap", Requested: name, Used: s.Name}
}

// Domain maps data values onto [0,1] with 0 pinned to the middle of the
// scale. Min and Max are the data range shown on the colorbar.
type Domain struct {
	Min, Max float64
}

// NewDomain builds the color domain for values in [lo, hi]; a degenerate
// range is widened by half a unit either side.
func NewDomain(lo, hi float64) Domain {
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo < 1e-12 {
		lo, hi = lo-0.5, hi+0.5
	}
	return Domain{Min: lo, Max: hi}
}

// Position returns the scale coordinate of v.
func (d Domain) Position(v float64) float64 {
	vrange := math.Max(math.Abs(d.Min), math.Abs(d.Max))
	if vrange == 0 {
		return 0.5
	}
	return 0.5 + v/(2*vrange)
}
