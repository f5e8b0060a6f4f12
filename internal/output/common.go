package output

// TSVHeader is the canonical header row for the selection report.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "label\trank\tcv\tmean\tstdev\tvalid\tmissing"

// Report formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// NA is written in TSV cells whose statistic does not exist.
const NA = "NA"
