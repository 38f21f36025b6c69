// Package mp4 is the raw-tag codec for MP4 atom items.
//
// MP4 items are typed rather than uniformly stringly, so each item kind has
// its own rendering. Integer pairs expand to two rows and string lists to
// one row per element; binary items surface as a bare key so callers can
// see they exist without pulling payloads through the row channel.
package mp4

import (
	"sort"
	"strconv"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// ReadRows renders every item of t as rows, in sorted key order. A nil tag
// (the container has no MP4 tag) yields no rows.
//
// Per item kind: Bool renders "1"/"0"; the integer kinds render decimal;
// IntPair yields two rows, "key:num" and "key:total"; StringList yields one
// row per element under the same key; the binary list kinds yield a single
// row with an empty value. Unknown kinds are skipped.
func ReadRows(t *tagfile.MP4Tag) types.Rows {
	if t == nil {
		return nil
	}

	keys := make([]string, 0, len(t.Items))
	for k := range t.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows types.Rows
	for _, key := range keys {
		item := t.Items[key]
		switch item.Kind {
		case tagfile.ItemBool:
			v := "0"
			if item.Bool {
				v = "1"
			}
			rows = append(rows, types.Row{Key: key, Value: v})
		case tagfile.ItemInt, tagfile.ItemUInt, tagfile.ItemByte, tagfile.ItemLongLong:
			rows = append(rows, types.Row{Key: key, Value: strconv.FormatInt(item.Int, 10)})
		case tagfile.ItemIntPair:
			rows = append(rows,
				types.Row{Key: key + ":num", Value: strconv.Itoa(item.Pair[0])},
				types.Row{Key: key + ":total", Value: strconv.Itoa(item.Pair[1])},
			)
		case tagfile.ItemStringList:
			for _, s := range item.Strings {
				rows = append(rows, types.Row{Key: key, Value: s})
			}
		case tagfile.ItemCoverArtList, tagfile.ItemByteVectorList:
			rows = append(rows, types.Row{Key: key, Value: ""})
		}
	}
	return rows
}
