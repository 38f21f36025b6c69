// Package id3v1 is the raw-tag codec for legacy ID3v1 trailers.
//
// ID3v1 carries exactly seven fields with no repetition and no sub-fields,
// so the codec is a fixed-order flattening of the field map. It only reads;
// the write path for MPEG containers goes through the ID3v2 codec.
package id3v1

import (
	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// fieldOrder is the canonical row order, matching the field layout of the
// 128-byte trailer.
var fieldOrder = []string{"TITLE", "ARTIST", "ALBUM", "YEAR", "COMMENT", "TRACK", "GENRE"}

// ReadRows renders the ID3v1 fields of f as rows in trailer order,
// skipping fields the tag leaves empty. Files without an ID3v1 view, and
// files whose view reports no tag, yield no rows; a missing ID3v1 tag is a
// valid state, not an error.
func ReadRows(f tagfile.File) types.Rows {
	v1, ok := f.(tagfile.ID3v1File)
	if !ok {
		return nil
	}
	fields := v1.ID3v1()
	if fields == nil {
		return nil
	}

	var rows types.Rows
	for _, key := range fieldOrder {
		if val := fields[key]; val != "" {
			rows = append(rows, types.Row{Key: key, Value: val})
		}
	}
	return rows
}
