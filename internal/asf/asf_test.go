package asf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

func TestReadRows_NilTag(t *testing.T) {
	assert.Nil(t, ReadRows(nil))
}

func TestReadRows_BasicFieldsFirst(t *testing.T) {
	tag := &tagfile.ASFTag{
		Title:  "Song",
		Artist: "Someone",
		Rating: "5",
		Attributes: []tagfile.Attribute{
			{Name: "WM/AlbumTitle", Kind: tagfile.AttributeUnicode, String: "Album"},
		},
	}

	rows := ReadRows(tag)

	assert.Equal(t, types.Rows{
		{Key: "Title", Value: "Song"},
		{Key: "Author", Value: "Someone"},
		{Key: "Rating", Value: "5"},
		{Key: "WM/AlbumTitle", Value: "Album"},
	}, rows)
}

func TestReadRows_EmptyBasicFieldsSkipped(t *testing.T) {
	tag := &tagfile.ASFTag{Comment: "only this"}

	rows := ReadRows(tag)

	assert.Equal(t, types.Rows{{Key: "Description", Value: "only this"}}, rows)
}

func TestReadRows_AttributeKinds(t *testing.T) {
	tag := &tagfile.ASFTag{Attributes: []tagfile.Attribute{
		{Name: "WM/PartOfSet", Kind: tagfile.AttributeUnicode, String: "1/2"},
		{Name: "WM/SharedUserRating", Kind: tagfile.AttributeDWord, Uint: 75},
		{Name: "IsVBR", Kind: tagfile.AttributeBool, Bool: true},
		{Name: "WM/FileSize", Kind: tagfile.AttributeQWord, Uint: 123456789},
		{Name: "WM/Picture", Kind: tagfile.AttributeBytes, Data: []byte{1, 2}},
		{Name: "WM/WMCollectionID", Kind: tagfile.AttributeGuid, Data: []byte{3, 4}},
	}}

	rows := ReadRows(tag)

	assert.Equal(t, types.Rows{
		{Key: "WM/PartOfSet", Value: "1/2"},
		{Key: "WM/SharedUserRating", Value: "75"},
		{Key: "IsVBR", Value: "1"},
		{Key: "WM/FileSize", Value: "123456789"},
		{Key: "WM/Picture", Value: ""},
		{Key: "WM/WMCollectionID", Value: ""},
	}, rows)
}

func TestReadRows_UnknownKindSkipped(t *testing.T) {
	tag := &tagfile.ASFTag{Attributes: []tagfile.Attribute{
		{Name: "Strange", Kind: tagfile.AttributeKind(42)},
		{Name: "WM/Year", Kind: tagfile.AttributeUnicode, String: "1999"},
	}}

	rows := ReadRows(tag)

	// The unknown attribute leaves no row at all, not even an empty one.
	assert.Equal(t, types.Rows{{Key: "WM/Year", Value: "1999"}}, rows)
}

func TestReadRows_RepeatedAttributeNames(t *testing.T) {
	tag := &tagfile.ASFTag{Attributes: []tagfile.Attribute{
		{Name: "WM/Genre", Kind: tagfile.AttributeUnicode, String: "Rock"},
		{Name: "WM/Genre", Kind: tagfile.AttributeUnicode, String: "Pop"},
	}}

	rows := ReadRows(tag)

	assert.Equal(t, types.Rows{
		{Key: "WM/Genre", Value: "Rock"},
		{Key: "WM/Genre", Value: "Pop"},
	}, rows)
}
