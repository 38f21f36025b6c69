package tagfile

// FrameKind discriminates the ID3v2 frame variants tagbridge understands.
// Frames that need no special handling are FrameOther and carry only their
// generic string rendering.
type FrameKind int

const (
	// FrameText is a text-identification frame (any ID starting with "T"
	// except TXXX). Carries a multi-valued text field.
	FrameText FrameKind = iota
	// FrameUserText is a TXXX frame: description plus text field list.
	FrameUserText
	// FrameComment is a COMM frame: description, language and text.
	FrameComment
	// FramePopularimeter is a POPM frame: email and rating.
	FramePopularimeter
	// FrameLyrics is a USLT frame: language and unsynchronized text.
	FrameLyrics
	// FrameSyncedLyrics is a SYLT frame: language plus timed segments.
	FrameSyncedLyrics
	// FrameOther is any other frame, rendered as a single string.
	FrameOther
)

// TimestampUnit is the time base of SYLT segments.
type TimestampUnit int

const (
	// TimestampMilliseconds counts absolute milliseconds from the start
	// of the audio.
	TimestampMilliseconds TimestampUnit = iota
	// TimestampMPEGFrames counts absolute MPEG frames. Converting to wall
	// time needs the sample rate, which the tag alone does not provide.
	TimestampMPEGFrames
)

// SyncedText is one timed segment of a SYLT frame.
type SyncedText struct {
	TimeMs uint32
	Text   string
}

// Frame is one ID3v2 frame instance, as a tagged union over FrameKind.
// Only the fields relevant to the Kind are meaningful.
type Frame struct {
	// ID is the four-character frame identifier ("TIT2", "TXXX", ...).
	ID string

	Kind FrameKind

	// Text is the text field list (FrameText, FrameUserText).
	Text []string

	// Description (FrameUserText, FrameComment).
	Description string

	// Language is the 3-character code (FrameComment, FrameLyrics,
	// FrameSyncedLyrics). Empty when the frame carries none.
	Language string

	// Email and Rating (FramePopularimeter). Rating is 0-255.
	Email  string
	Rating int

	// Value is the lyric text (FrameLyrics, FrameComment) or the generic
	// rendering (FrameOther).
	Value string

	// Synced segments and their time base (FrameSyncedLyrics).
	Synced []SyncedText
	Unit   TimestampUnit
}

// ID3v2Tag is the frame list of one ID3v2 tag. Frames preserves on-tag
// order; repeated frame IDs are the list mechanism.
type ID3v2Tag struct {
	Frames []Frame
}

// RemoveFrames deletes every frame with the given ID.
func (t *ID3v2Tag) RemoveFrames(id string) {
	kept := t.Frames[:0]
	for _, f := range t.Frames {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	t.Frames = kept
}

// AddFrame appends a frame to the tag.
func (t *ID3v2Tag) AddFrame(f Frame) {
	t.Frames = append(t.Frames, f)
}

// FrameIDs returns the distinct frame IDs present, in first-seen order.
func (t *ID3v2Tag) FrameIDs() []string {
	seen := make(map[string]bool, len(t.Frames))
	var ids []string
	for _, f := range t.Frames {
		if !seen[f.ID] {
			seen[f.ID] = true
			ids = append(ids, f.ID)
		}
	}
	return ids
}
