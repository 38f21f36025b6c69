package tagbridge

import (
	"time"

	"github.com/deluan/tagbridge/internal/asf"
	"github.com/deluan/tagbridge/internal/id3v1"
	"github.com/deluan/tagbridge/internal/id3v2"
	"github.com/deluan/tagbridge/internal/mp4"
	"github.com/deluan/tagbridge/internal/norm"
	"github.com/deluan/tagbridge/internal/picture"
	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// ReadTags reads the normalized metadata rows of the handle: the tag
// library's format-agnostic property bag, flattened to one row per
// (key, single value).
func (r *Registry) ReadTags(h Handle) (Rows, error) {
	s, err := r.lookup(h)
	if err != nil {
		return nil, err
	}
	return norm.ReadRows(s.file), nil
}

// ReadRawTags reads the container's native tag representation as rows,
// dispatching on the format classified at open time:
//
//   - MPEG, WAV, AIFF: ID3v2 frames (TXXX/COMM/POPM/USLT/SYLT keys carry a
//     sub-discriminator; SYLT values render as LRC lines)
//   - MP4: typed atom items (IntPair expands to key:num and key:total)
//   - ASF: basic fields followed by typed extended attributes
//   - everything else: the normalized rows, unchanged
//
// A container that legitimately has no tag of its native kind yields an
// empty sequence, not an error.
func (r *Registry) ReadRawTags(h Handle) (Rows, error) {
	s, err := r.lookup(h)
	if err != nil {
		return nil, err
	}

	switch s.format {
	case FormatMPEG, FormatWAV, FormatAIFF:
		if f, ok := s.file.(tagfile.ID3v2File); ok {
			return id3v2.ReadRows(f.ID3v2()), nil
		}
		return nil, nil
	case FormatMP4:
		if f, ok := s.file.(tagfile.MP4File); ok {
			return mp4.ReadRows(f.MP4()), nil
		}
		return nil, nil
	case FormatASF:
		if f, ok := s.file.(tagfile.ASFFile); ok {
			return asf.ReadRows(f.ASF()), nil
		}
		return nil, nil
	default:
		return norm.ReadRows(s.file), nil
	}
}

// ReadID3v1Tags reads the legacy ID3v1 trailer of the handle as rows in
// trailer order: TITLE, ARTIST, ALBUM, YEAR, COMMENT, TRACK, GENRE, with
// empty fields skipped.
//
// Only MPEG containers carry ID3v1 trailers; every other format, and an
// MPEG file without one, yields an empty sequence rather than an error.
func (r *Registry) ReadID3v1Tags(h Handle) (Rows, error) {
	s, err := r.lookup(h)
	if err != nil {
		return nil, err
	}
	if s.format != FormatMPEG {
		return nil, nil
	}
	return id3v1.ReadRows(s.file), nil
}

// AllTags bundles every tag view of one handle, read in a single call.
type AllTags struct {
	// Tags holds the normalized rows, as ReadTags returns them.
	Tags Rows
	// Raw holds the format-native rows, as ReadRawTags returns them.
	Raw Rows
	// Format is the container format classified at open time.
	Format Format
}

// ReadAllTags reads the normalized and format-native rows of the handle
// together with its format. Convenient for callers that always want both
// views and would otherwise pay two lookups.
func (r *Registry) ReadAllTags(h Handle) (AllTags, error) {
	s, err := r.lookup(h)
	if err != nil {
		return AllTags{}, err
	}
	raw, err := r.ReadRawTags(h)
	if err != nil {
		return AllTags{}, err
	}
	return AllTags{Tags: norm.ReadRows(s.file), Raw: raw, Format: s.format}, nil
}

// ReadProperties returns the technical snapshot of the handle: duration,
// channels, sample rate, bitrate, bit depth (0 when the container does not
// expose one), the sub-codec name when known, and the metadata of every
// embedded picture.
//
// Returns ErrNoAudioProperties when the tag library could not compute audio
// properties for the file.
func (r *Registry) ReadProperties(h Handle) (*FileProperties, error) {
	s, err := r.lookup(h)
	if err != nil {
		return nil, err
	}

	ap := s.file.AudioProperties()
	if ap == nil {
		return nil, types.ErrNoAudioProperties
	}

	return &FileProperties{
		Length:        time.Duration(ap.LengthMs) * time.Millisecond,
		Channels:      uint(ap.Channels),
		SampleRate:    uint(ap.SampleRate),
		Bitrate:       uint(ap.Bitrate),
		BitsPerSample: uint(ap.BitsPerSample),
		Codec:         ap.Codec,
		Images:        picture.Describe(s.file),
	}, nil
}

// WriteTags applies rows to the handle's normalized property bag and
// persists the file.
//
// Without Clear the rows merge into the current bag; with Clear the bag
// starts empty. Within the rows, an empty value erases its key, a
// non-empty value replaces the key's whole value list (split on ValueSep),
// and a later row for a key wins over an earlier one.
func (r *Registry) WriteTags(h Handle, rows Rows, opts WriteOption) error {
	s, err := r.lookup(h)
	if err != nil {
		return err
	}
	if err := s.writable(); err != nil {
		return err
	}
	if err := norm.ApplyRows(s.file, rows, opts&Clear != 0); err != nil {
		r.log.Debug("write tags failed", "handle", uint32(h), "error", err)
		return err
	}
	return nil
}

// WriteRawTags applies rows to the container's native tag representation
// and persists the file. Only MPEG containers support raw writes; rows for
// frame kinds other than text and comment frames remove existing frames
// but are not reconstructed.
//
// Returns an UnsupportedWriteError for every other format.
func (r *Registry) WriteRawTags(h Handle, rows Rows, opts WriteOption) error {
	s, err := r.lookup(h)
	if err != nil {
		return err
	}
	if err := s.writable(); err != nil {
		return err
	}

	if s.format != FormatMPEG {
		return &types.UnsupportedWriteError{
			Format: s.format,
			Reason: "raw tag writes require an MPEG container",
		}
	}
	f, ok := s.file.(tagfile.ID3v2File)
	if !ok {
		return &types.UnsupportedWriteError{
			Format: s.format,
			Reason: "tag library exposes no ID3v2 view",
		}
	}

	if err := id3v2.WriteRows(f, rows, opts&Clear != 0); err != nil {
		r.log.Debug("write raw tags failed", "handle", uint32(h), "error", err)
		return err
	}
	return nil
}
