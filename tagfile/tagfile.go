// Package tagfile defines the contract between tagbridge and a tag library.
//
// tagbridge does not parse container formats itself. All byte-level work -
// reading ID3v2 frames out of an MPEG stream, walking MP4 atoms, rewriting a
// Vorbis comment block - is delegated to a collaborator that implements the
// interfaces in this package. The collaborator owns parsing, serialization
// and persistence; tagbridge owns handle management, format dispatch, and
// the row-oriented boundary representation.
//
// Two implementations ship with this module: memfile (a complete in-memory
// library, used heavily by tests) and litefile (a read-only backend over
// real parsing libraries). A production embedding typically supplies its own
// Opener wrapping whatever native library it links against.
package tagfile

import "io"

// ReadStyle controls how much of the audio stream a library scans when
// computing technical properties. Higher accuracy costs more I/O and CPU;
// lower accuracy may under-report duration and bitrate for variable-bitrate
// containers.
type ReadStyle int

const (
	// ReadStyleFast derives properties from headers only.
	ReadStyleFast ReadStyle = iota
	// ReadStyleAverage is the default trade-off.
	ReadStyleAverage
	// ReadStyleAccurate scans as much of the stream as needed for exact
	// duration and bitrate.
	ReadStyleAccurate
)

// Container identifies the concrete container type a library detected when
// opening a file. It is reported once, at open time, and never changes for
// the life of the File.
type Container int

const (
	ContainerUnknown Container = iota
	ContainerMPEG
	ContainerMP4
	ContainerFLAC
	ContainerOggVorbis
	ContainerOggOpus
	ContainerOggFLAC
	ContainerOggSpeex
	ContainerWAV
	ContainerAIFF
	ContainerASF
	ContainerAPE
	ContainerWavPack
	ContainerDSF
	ContainerDSDIFF
	ContainerTrueAudio
	ContainerMPC
	ContainerShorten
)

// AudioProperties is the technical snapshot a library computes for an open
// file.
type AudioProperties struct {
	// LengthMs is the duration in milliseconds.
	LengthMs int

	// Channels is the channel count.
	Channels int

	// SampleRate in Hz.
	SampleRate int

	// Bitrate in kbit/s.
	Bitrate int

	// BitsPerSample is the bit depth. Zero when the container's property
	// type does not expose one.
	BitsPerSample int

	// Codec names the sub-codec when known (for example "AAC", "ALAC",
	// "MP3", "WMA"). Empty for containers without a meaningful sub-codec.
	Codec string
}

// Picture is one embedded image. Pictures form an ordered list per file;
// the position in that list is the index used by the picture operations.
type Picture struct {
	Type        string // picture type, e.g. "Front Cover"
	Description string
	MIMEType    string // e.g. "image/jpeg"
	Data        []byte
}

// File is one open session against a tag library.
//
// A File is owned by exactly one tagbridge handle and is not safe for
// concurrent use. Mutating methods change in-memory state only; nothing is
// written to the backing store until Save is called.
type File interface {
	// Container reports the concrete container type detected at open time.
	Container() Container

	// AudioProperties returns the technical snapshot, or nil when the
	// library could not compute audio properties for this file.
	AudioProperties() *AudioProperties

	// Properties returns the normalized property map: uppercase-ish
	// logical keys (ARTIST, ALBUM, ...) to ordered value lists. The
	// returned map is a snapshot; mutate it freely and hand it back via
	// SetProperties.
	Properties() map[string][]string

	// SetProperties replaces the file's normalized property map.
	SetProperties(props map[string][]string)

	// Pictures returns the ordered embedded picture list. An empty slice
	// means the file has none; an error means the library could not read
	// the complex-property list at all.
	Pictures() ([]Picture, error)

	// SetPictures replaces the embedded picture list. A failure here is
	// distinct from a Save failure: the list could not be committed to
	// the file object and nothing should be persisted.
	SetPictures(pics []Picture) error

	// Save persists all pending changes to the backing store.
	Save() error

	// Close releases the library's resources for this file. Close does
	// not save.
	Close() error
}

// ID3v2File is implemented by Files whose container carries ID3v2 tags
// (MPEG, and the ID3v2 chunks of WAV and AIFF).
type ID3v2File interface {
	File

	// ID3v2 returns the file's ID3v2 tag, or nil when the file has none.
	ID3v2() *ID3v2Tag

	// EnsureID3v2 returns the file's ID3v2 tag, creating an empty one
	// first if the file has none.
	EnsureID3v2() *ID3v2Tag
}

// ID3v1File is implemented by Files that can surface a legacy ID3v1 tag
// alongside whatever newer tag the container carries. ID3v1 is a fixed
// seven-field trailer (title, artist, album, year, comment, track, genre),
// so it is modeled as a flat map rather than a frame list.
type ID3v1File interface {
	File

	// ID3v1 returns the file's ID3v1 fields keyed by logical name (TITLE,
	// ARTIST, ...), or nil when the file has no ID3v1 tag.
	ID3v1() map[string]string
}

// MP4File is implemented by Files backed by an MP4 container.
type MP4File interface {
	File

	// MP4 returns the file's MP4 tag, or nil when the file has none.
	MP4() *MP4Tag
}

// ASFFile is implemented by Files backed by an ASF/WMA container.
type ASFFile interface {
	File

	// ASF returns the file's ASF tag, or nil when the file has none.
	ASF() *ASFTag
}

// Stream is the random-access byte source a library reads when a file is
// opened from a stream rather than a path. The write-side methods exist
// because tag libraries probe for them; on read-only sources they are
// required to be silent no-ops, never errors.
type Stream interface {
	io.ReadSeeker

	// Name is the virtual file name, used for extension-based hints.
	Name() string

	// Length is the total stream length in bytes, fixed for the life of
	// the stream.
	Length() int64

	// WriteBlock, Insert, RemoveBlock and Truncate mutate the stream.
	// Read-only streams implement them as no-ops.
	WriteBlock(p []byte)
	Insert(p []byte, start int64, replace int64)
	RemoveBlock(start int64, length int64)
	Truncate(length int64)

	// ReadOnly reports whether the write-side methods are no-ops.
	ReadOnly() bool
}

// Opener creates Files. It is the injection point for a tag library.
type Opener interface {
	// Open opens the file at path. A nil error guarantees a non-nil File.
	Open(path string, style ReadStyle) (File, error)

	// OpenStream opens a file over a caller-owned stream. The Opener does
	// not take ownership of s; the caller releases it after closing the
	// returned File.
	OpenStream(s Stream, style ReadStyle) (File, error)
}
