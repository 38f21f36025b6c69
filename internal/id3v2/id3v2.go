// Package id3v2 is the raw-tag codec for ID3v2 frame lists.
//
// The frame list is richer than the normalized property bag: frames repeat,
// and several frame types carry typed sub-fields (descriptions, languages,
// ratings, timed lyrics). The codec renders each frame instance as one row,
// encoding the sub-field that disambiguates repeated frames into the key
// after a colon.
package id3v2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// ReadRows renders every frame instance of t as a row. A nil tag (the
// container has no ID3v2 tag at all) yields no rows; absence of a tag kind
// is a valid state, not an error.
func ReadRows(t *tagfile.ID3v2Tag) types.Rows {
	if t == nil {
		return nil
	}

	var rows types.Rows
	for _, f := range t.Frames {
		var key, value string
		switch f.Kind {
		case tagfile.FrameUserText:
			key = f.ID + ":" + f.Description
			if len(f.Text) > 0 {
				value = f.Text[len(f.Text)-1]
			}
		case tagfile.FrameComment:
			key = f.ID + ":" + f.Description
			value = f.Value
		case tagfile.FramePopularimeter:
			key = f.ID + ":" + f.Email
			value = strconv.Itoa(f.Rating)
		case tagfile.FrameLyrics:
			key = f.ID + ":" + languageOrSentinel(f.Language)
			value = f.Value
		case tagfile.FrameSyncedLyrics:
			key = f.ID + ":" + languageOrSentinel(f.Language)
			value = renderLRC(f)
		case tagfile.FrameText:
			key = f.ID
			value = strings.Join(f.Text, " ")
		default:
			key = f.ID
			value = f.Value
		}
		rows = append(rows, types.Row{Key: key, Value: value})
	}
	return rows
}

// languageOrSentinel returns the frame's 3-character language code, or the
// sentinel "xxx" when the frame carries none.
func languageOrSentinel(lang string) string {
	if len(lang) == 3 {
		return lang
	}
	return "xxx"
}

// renderLRC renders a SYLT frame's segments as LRC lines, one
// "[mm:ss.cc]text\n" per segment.
//
// Segments timed in absolute MPEG frames are skipped: converting them to
// wall time needs the audio sample rate, which the tag alone does not
// carry. The loss is accepted, not reported.
func renderLRC(f tagfile.Frame) string {
	if f.Unit == tagfile.TimestampMPEGFrames {
		return ""
	}
	var sb strings.Builder
	for _, seg := range f.Synced {
		ms := int(seg.TimeMs)
		mins := ms / 60000
		secs := (ms % 60000) / 1000
		centis := (ms % 1000) / 10
		fmt.Fprintf(&sb, "[%02d:%02d.%02d]%s\n", mins, secs, centis, seg.Text)
	}
	return sb.String()
}

// WriteRows applies rows to the file's ID3v2 tag and persists the result.
// An ID3v2 tag is created first if the file has none.
//
// With clear set, every existing frame whose base ID does not appear in the
// input is removed first; the set is computed from the row keys with any
// ":sub" suffix stripped. Each row then removes all existing frames of its
// base ID and, for a non-empty value, constructs a replacement:
//
//   - TXXX rows become user-text frames carrying the key's description,
//     with the value split on types.ValueSep.
//   - Other IDs starting with "T" become text-identification frames with
//     the value split on types.ValueSep into a multi-valued text field.
//   - COMM rows become a single comment frame with that text.
//   - Any other frame kind is not reconstructed from rows; the row only
//     removes what was there.
func WriteRows(f tagfile.ID3v2File, rows types.Rows, clear bool) error {
	tag := f.EnsureID3v2()

	if clear {
		keep := make(map[string]bool, len(rows))
		for _, r := range rows {
			keep[baseID(r.Key)] = true
		}
		for _, id := range tag.FrameIDs() {
			if !keep[id] {
				tag.RemoveFrames(id)
			}
		}
	}

	for _, r := range rows {
		base, sub, _ := strings.Cut(r.Key, ":")
		tag.RemoveFrames(base)
		if r.Value == "" {
			continue
		}
		switch {
		case base == "TXXX":
			tag.AddFrame(tagfile.Frame{
				ID:          base,
				Kind:        tagfile.FrameUserText,
				Description: sub,
				Text:        strings.Split(r.Value, types.ValueSep),
			})
		case strings.HasPrefix(base, "T"):
			tag.AddFrame(tagfile.Frame{
				ID:   base,
				Kind: tagfile.FrameText,
				Text: strings.Split(r.Value, types.ValueSep),
			})
		case base == "COMM":
			tag.AddFrame(tagfile.Frame{
				ID:          base,
				Kind:        tagfile.FrameComment,
				Description: sub,
				Value:       r.Value,
			})
		}
	}

	if err := f.Save(); err != nil {
		return &types.SaveError{Op: "write frames", Err: err}
	}
	return nil
}

// baseID strips a ":sub" discriminator from a row key.
func baseID(key string) string {
	base, _, _ := strings.Cut(key, ":")
	return base
}
