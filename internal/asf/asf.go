// Package asf is the raw-tag codec for ASF/WMA attributes.
//
// ASF stores five basic fields apart from its extended attribute list, so
// the codec emits those first, under their native names, before the typed
// extended attributes.
package asf

import (
	"strconv"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// ReadRows renders t as rows. A nil tag (no ASF tag present) yields no rows.
//
// The basic fields appear first, when non-empty, in the fixed order Title,
// Author, Copyright, Description, Rating. Extended attributes follow in
// list order: Unicode renders as-is, Bool as "1"/"0", the integer kinds as
// decimal, and the binary kinds (Bytes, Guid) as an empty value. Attributes
// of any other kind are skipped entirely, without even an empty row.
func ReadRows(t *tagfile.ASFTag) types.Rows {
	if t == nil {
		return nil
	}

	var rows types.Rows
	basic := []types.Row{
		{Key: "Title", Value: t.Title},
		{Key: "Author", Value: t.Artist},
		{Key: "Copyright", Value: t.Copyright},
		{Key: "Description", Value: t.Comment},
		{Key: "Rating", Value: t.Rating},
	}
	for _, r := range basic {
		if r.Value != "" {
			rows = append(rows, r)
		}
	}

	for _, attr := range t.Attributes {
		var value string
		switch attr.Kind {
		case tagfile.AttributeUnicode:
			value = attr.String
		case tagfile.AttributeBool:
			value = "0"
			if attr.Bool {
				value = "1"
			}
		case tagfile.AttributeWord, tagfile.AttributeDWord, tagfile.AttributeQWord:
			value = strconv.FormatUint(attr.Uint, 10)
		case tagfile.AttributeBytes, tagfile.AttributeGuid:
			value = ""
		default:
			continue
		}
		rows = append(rows, types.Row{Key: attr.Name, Value: value})
	}
	return rows
}
