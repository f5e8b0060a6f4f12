// pkg/api/selection_v1.go
package api

// SelectionV1 is the stable JSON schema for one selected row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SelectionV1 struct {
	Label   string   `json:"label"`
	Rank    int      `json:"rank"`  // 1-based
	CV      *float64 `json:"cv"`    // null when fewer than two values are present
	Mean    *float64 `json:"mean"`  // null when no value is present
	Stdev   *float64 `json:"stdev"` // sample stdev; null when fewer than two values
	Valid   int      `json:"valid"`
	Missing int      `json:"missing"`
}
