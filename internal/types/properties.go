package types

import "time"

// ImageDesc describes one embedded image without its payload. The payload is
// fetched separately, by index, through the image operations.
type ImageDesc struct {
	// Type is the picture type, e.g. "Front Cover".
	Type string

	// Description is the free-text description.
	Description string

	// MIMEType is the image MIME type, e.g. "image/jpeg".
	MIMEType string
}

// FileProperties is the read-only technical snapshot of an open handle.
type FileProperties struct {
	// Length is the audio duration.
	Length time.Duration

	// Channels is the channel count.
	Channels uint

	// SampleRate in Hz.
	SampleRate uint

	// Bitrate in kbit/s.
	Bitrate uint

	// BitsPerSample is the bit depth, 0 for containers that do not
	// expose one.
	BitsPerSample uint

	// Codec is the sub-codec name when known ("AAC", "ALAC", "MP3",
	// "WMA", ...), empty otherwise.
	Codec string

	// Images describes every embedded picture, in list order.
	Images []ImageDesc
}
