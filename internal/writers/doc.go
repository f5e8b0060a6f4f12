// Package writers turns a row selection into a serialized report.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON).
//   - The ranking stays domain-only; the pipeline stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
