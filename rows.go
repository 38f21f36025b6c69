package tagbridge

import (
	"github.com/deluan/tagbridge/internal/types"
)

// Row is an alias to types.Row: one (key, value) pair of the boundary
// representation.
type Row = types.Row

// Rows is an alias to types.Rows: an ordered row sequence with explicit
// length.
type Rows = types.Rows

// ImageDesc is an alias to types.ImageDesc: one picture's metadata row.
type ImageDesc = types.ImageDesc

// FileProperties is an alias to types.FileProperties: the technical
// snapshot returned by ReadProperties.
type FileProperties = types.FileProperties

// Boundary separators, re-exported for callers that build or parse the
// flat row form themselves.
const (
	// RowSep separates key from value within one flat row.
	RowSep = types.RowSep
	// ValueSep joins multiple values of one key inside a row value.
	ValueSep = types.ValueSep
)

// ParseRows parses flat "key\tvalue" strings into rows, skipping malformed
// entries.
func ParseRows(flat []string) Rows {
	return types.ParseRows(flat)
}

// RowsFromMap converts a key to value-list map into rows, one row per key
// with values joined by ValueSep, in sorted key order.
func RowsFromMap(m map[string][]string) Rows {
	return types.RowsFromMap(m)
}
