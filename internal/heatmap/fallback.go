package heatmap

import "fmt"

// Fallback records a visual resource that was substituted.
type Fallback struct {
	Resource  string // "colormap" or "typeface"
	Requested string
	Used      string
}

func (f Fallback) String() string {
	return fmt.Sprintf("requested %s %q not available; falling back to %q", f.Resource, f.Requested, f.Used)
}
