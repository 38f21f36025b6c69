package mp4

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

func TestReadRows_NilTag(t *testing.T) {
	assert.Nil(t, ReadRows(nil))
}

func TestReadRows_IntPairExpandsToTwoRows(t *testing.T) {
	tag := &tagfile.MP4Tag{Items: map[string]tagfile.Item{
		"trkn": {Kind: tagfile.ItemIntPair, Pair: [2]int{3, 12}},
	}}

	rows := ReadRows(tag)

	assert.Equal(t, types.Rows{
		{Key: "trkn:num", Value: "3"},
		{Key: "trkn:total", Value: "12"},
	}, rows)
}

func TestReadRows_ItemKinds(t *testing.T) {
	tag := &tagfile.MP4Tag{Items: map[string]tagfile.Item{
		"cpil": {Kind: tagfile.ItemBool, Bool: true},
		"pgap": {Kind: tagfile.ItemBool, Bool: false},
		"tmpo": {Kind: tagfile.ItemInt, Int: 128},
		"plID": {Kind: tagfile.ItemLongLong, Int: 9876543210},
	}}

	rows := ReadRows(tag)

	// Sorted key order: cpil, pgap, plID, tmpo.
	assert.Equal(t, types.Rows{
		{Key: "cpil", Value: "1"},
		{Key: "pgap", Value: "0"},
		{Key: "plID", Value: "9876543210"},
		{Key: "tmpo", Value: "128"},
	}, rows)
}

func TestReadRows_StringListRepeatsKey(t *testing.T) {
	tag := &tagfile.MP4Tag{Items: map[string]tagfile.Item{
		"\xa9gen": {Kind: tagfile.ItemStringList, Strings: []string{"Rock", "Pop"}},
	}}

	rows := ReadRows(tag)

	assert.Equal(t, types.Rows{
		{Key: "\xa9gen", Value: "Rock"},
		{Key: "\xa9gen", Value: "Pop"},
	}, rows)
}

func TestReadRows_BinaryItemsBareKey(t *testing.T) {
	// Binary payloads never cross the row channel; the bare key signals
	// presence.
	tag := &tagfile.MP4Tag{Items: map[string]tagfile.Item{
		"covr": {Kind: tagfile.ItemCoverArtList, Data: [][]byte{{0xFF, 0xD8}}},
	}}

	rows := ReadRows(tag)

	assert.Equal(t, types.Rows{{Key: "covr", Value: ""}}, rows)
}
