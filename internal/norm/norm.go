// Package norm converts between the normalized property bag a tag library
// maintains and the row-oriented boundary representation.
//
// The normalized bag is the format-agnostic universe: uppercase-ish logical
// keys mapped to ordered value lists, with the library responsible for
// translating them to and from each container's native fields. This codec
// never inspects formats; it only flattens and applies.
package norm

import (
	"strings"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// ReadRows flattens the file's property bag into rows, one row per
// (key, single value). A key with N values yields N rows with the same key,
// preserving the bag's value ordering. Row order across keys follows the
// bag's iteration order, which is not guaranteed to be alphabetical.
func ReadRows(f tagfile.File) types.Rows {
	props := f.Properties()
	var rows types.Rows
	for key, values := range props {
		for _, v := range values {
			rows = append(rows, types.Row{Key: key, Value: v})
		}
	}
	return rows
}

// ApplyRows applies rows to the file's property bag and persists the result.
//
// With clear set, the bag starts empty; otherwise it starts from the file's
// current properties (merge). Rows are applied in input order: an empty
// value erases the key outright, a non-empty value replaces the key's whole
// value list with the value split on types.ValueSep. A later row for a key
// overwrites the effect of an earlier one.
//
// A persistence failure is reported as an error; there is no partial
// success.
func ApplyRows(f tagfile.File, rows types.Rows, clear bool) error {
	var props map[string][]string
	if clear {
		props = make(map[string][]string)
	} else {
		props = f.Properties()
		if props == nil {
			props = make(map[string][]string)
		}
	}

	for _, r := range rows {
		if r.Value == "" {
			delete(props, r.Key)
			continue
		}
		props[r.Key] = strings.Split(r.Value, types.ValueSep)
	}

	f.SetProperties(props)
	if err := f.Save(); err != nil {
		return &types.SaveError{Op: "write tags", Err: err}
	}
	return nil
}
