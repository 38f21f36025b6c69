package tagbridge

import (
	"github.com/h2non/filetype"

	"github.com/deluan/tagbridge/internal/picture"
)

// ReadImage returns the raw payload of the embedded picture at index.
// Index 0 is the first picture; an out-of-range index returns an
// ImageNotFoundError.
//
// Picture indices are positional and only stable between a read and a
// subsequent write on the same handle: any write may renumber the list.
func (r *Registry) ReadImage(h Handle, index int) ([]byte, error) {
	s, err := r.lookup(h)
	if err != nil {
		return nil, err
	}
	return picture.Fetch(s.file, index)
}

// WriteImage writes, replaces or deletes an embedded picture and persists
// the file.
//
// A zero-length payload deletes the picture at index when in range; an
// out-of-range index is a silent no-op that still saves. A non-zero
// payload replaces the picture at index when in range and is appended
// otherwise, carrying the given type, description and MIME metadata. An
// empty mimeType is auto-detected from the payload's magic bytes.
func (r *Registry) WriteImage(h Handle, data []byte, index int, picType, description, mimeType string) error {
	s, err := r.lookup(h)
	if err != nil {
		return err
	}
	if err := s.writable(); err != nil {
		return err
	}
	if mimeType == "" && len(data) > 0 {
		mimeType = DetectImageMIME(data)
	}
	if err := picture.Apply(s.file, data, index, picType, description, mimeType); err != nil {
		r.log.Debug("write image failed", "handle", uint32(h), "index", index, "error", err)
		return err
	}
	return nil
}

// WriteCover sets data as the "Front Cover" picture at index 0, replacing
// whatever is there, with the MIME type detected from the payload. A nil
// payload clears the first picture.
func (r *Registry) WriteCover(h Handle, data []byte) error {
	return r.WriteImage(h, data, 0, "Front Cover", "", "")
}

// DetectImageMIME detects an image MIME type from magic bytes. Returns ""
// for payloads that match no known image type.
func DetectImageMIME(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || kind.MIME.Type != "image" {
		return ""
	}
	return kind.MIME.Value
}
