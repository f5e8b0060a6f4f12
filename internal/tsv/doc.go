// Package tsv loads a tab-separated numeric table into a matrix.Labeled.
//
// The first line names the columns (its first cell, the label column's
// header, is ignored); every following line is a row label and one field per
// column. Fields that are not finite numbers become missing cells. After
// coercion, all-missing columns are dropped first, then all-missing rows.
package tsv
