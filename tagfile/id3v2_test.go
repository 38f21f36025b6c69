package tagfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID3v2Tag_RemoveFrames(t *testing.T) {
	tag := &ID3v2Tag{Frames: []Frame{
		{ID: "TIT2", Kind: FrameText},
		{ID: "TXXX", Kind: FrameUserText, Description: "a"},
		{ID: "TXXX", Kind: FrameUserText, Description: "b"},
		{ID: "TALB", Kind: FrameText},
	}}

	tag.RemoveFrames("TXXX")

	assert.Equal(t, []string{"TIT2", "TALB"}, tag.FrameIDs())
}

func TestID3v2Tag_RemoveFrames_Absent(t *testing.T) {
	tag := &ID3v2Tag{Frames: []Frame{{ID: "TIT2", Kind: FrameText}}}

	tag.RemoveFrames("COMM")

	assert.Len(t, tag.Frames, 1)
}

func TestID3v2Tag_FrameIDs_FirstSeenOrder(t *testing.T) {
	tag := &ID3v2Tag{Frames: []Frame{
		{ID: "TXXX"},
		{ID: "TIT2"},
		{ID: "TXXX"},
		{ID: "COMM"},
	}}

	assert.Equal(t, []string{"TXXX", "TIT2", "COMM"}, tag.FrameIDs())
}

func TestID3v2Tag_AddFrame(t *testing.T) {
	tag := &ID3v2Tag{}
	tag.AddFrame(Frame{ID: "TIT2", Kind: FrameText, Text: []string{"Song"}})

	assert.Len(t, tag.Frames, 1)
	assert.Equal(t, "TIT2", tag.Frames[0].ID)
}
