package types

import (
	"sort"
	"strings"
)

// Row and value separators. A row crosses the boundary as "key\tvalue"; a
// single row encodes a multi-valued key by joining values with ValueSep,
// which is distinct from RowSep so the two never collide.
const (
	RowSep   = "\t"
	ValueSep = "\v"
)

// Row is one (key, value) pair of the boundary representation.
//
// Keys may carry a sub-discriminator after a colon ("TXXX:description",
// "POPM:email", "trkn:num"). Values are plain strings; for normalized
// properties a multi-valued key is joined with ValueSep, while raw rows use
// key repetition as the list mechanism.
type Row struct {
	Key   string
	Value string
}

// Rows is an ordered row sequence. Internally the length is always explicit;
// the flat sentinel-free "key\tvalue" rendering exists only for crossing a
// narrow boundary (Strings / ParseRows).
type Rows []Row

// Strings renders the rows in the flat boundary form, one "key\tvalue"
// string per row.
func (rs Rows) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Key + RowSep + r.Value
	}
	return out
}

// Map folds the rows into a key to value-list map. Repeated keys append in
// row order.
func (rs Rows) Map() map[string][]string {
	if rs == nil {
		return nil
	}
	m := make(map[string][]string, len(rs))
	for _, r := range rs {
		m[r.Key] = append(m[r.Key], r.Value)
	}
	return m
}

// ParseRows parses flat "key\tvalue" strings back into rows. Strings without
// a separator are malformed and skipped; a parse never fails outright.
func ParseRows(flat []string) Rows {
	rows := make(Rows, 0, len(flat))
	for _, s := range flat {
		k, v, ok := strings.Cut(s, RowSep)
		if !ok {
			continue
		}
		rows = append(rows, Row{Key: k, Value: v})
	}
	return rows
}

// RowsFromMap converts a key to value-list map into rows, one row per key
// with the values joined by ValueSep. Keys are emitted in sorted order so
// the result is deterministic.
func RowsFromMap(m map[string][]string) Rows {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make(Rows, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, Row{Key: k, Value: strings.Join(m[k], ValueSep)})
	}
	return rows
}
