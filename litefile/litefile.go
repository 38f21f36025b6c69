// Package litefile is a read-only tag library built on real parsers.
//
// Container detection, normalized tags and the embedded front cover come
// from github.com/dhowden/tag. For MP4 containers the technical properties
// (duration, channels, sample rate, average bitrate, codec) are derived
// with github.com/abema/go-mp4. The only raw view the backend exposes is
// the ID3v1 trailer of MP3 files without an ID3v2 tag; other raw reads
// fall back to the normalized rows, and Save always fails with an
// UnsupportedWriteError.
//
// The package registers itself under the backend name "lite".
package litefile

import (
	"fmt"
	"io"
	"os"
	"strconv"

	gomp4 "github.com/abema/go-mp4"
	dtag "github.com/dhowden/tag"

	"github.com/deluan/tagbridge"
	"github.com/deluan/tagbridge/tagfile"
)

func init() {
	tagbridge.RegisterOpener("lite", Opener{})
}

// Opener implements tagfile.Opener over the local filesystem and over
// caller-supplied streams.
type Opener struct{}

// Open opens the file at path for reading.
func (Opener) Open(path string, style tagfile.ReadStyle) (tagfile.File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	f, err := parse(fh, style)
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.closer = fh
	return f, nil
}

// OpenStream parses a caller-owned stream. The stream stays owned by the
// caller and is not closed when the File is.
func (Opener) OpenStream(s tagfile.Stream, style tagfile.ReadStyle) (tagfile.File, error) {
	f, err := parse(s, style)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	return f, nil
}

type file struct {
	container tagfile.Container
	audio     *tagfile.AudioProperties
	props     map[string][]string
	id3v1     map[string]string
	pics      []tagfile.Picture
	closer    io.Closer
}

func parse(r io.ReadSeeker, style tagfile.ReadStyle) (*file, error) {
	md, err := dtag.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, tagbridge.ErrInvalidFile)
	}

	f := &file{
		container: containerOf(md),
		props:     normalize(md),
	}
	if md.Format() == dtag.ID3v1 {
		f.id3v1 = legacyFields(md)
	}
	if p := md.Picture(); p != nil {
		f.pics = append(f.pics, tagfile.Picture{
			Type:        p.Type,
			Description: p.Description,
			MIMEType:    p.MIMEType,
			Data:        p.Data,
		})
	}

	// Technical properties need a second pass over the container, which
	// the fast style skips. Only MP4 is supported; other containers
	// report no audio properties.
	if f.container == tagfile.ContainerMP4 && style != tagfile.ReadStyleFast {
		f.audio = probeMP4(r, codecOf(md))
	}
	return f, nil
}

func containerOf(md dtag.Metadata) tagfile.Container {
	switch md.FileType() {
	case dtag.MP3:
		return tagfile.ContainerMPEG
	case dtag.M4A, dtag.M4B, dtag.M4P, dtag.ALAC:
		return tagfile.ContainerMP4
	case dtag.FLAC:
		return tagfile.ContainerFLAC
	case dtag.OGG:
		return tagfile.ContainerOggVorbis
	case dtag.DSF:
		return tagfile.ContainerDSF
	}
	// Fall back to the tag format when the file type is unknown.
	switch md.Format() {
	case dtag.ID3v1, dtag.ID3v2_2, dtag.ID3v2_3, dtag.ID3v2_4:
		return tagfile.ContainerMPEG
	case dtag.MP4:
		return tagfile.ContainerMP4
	case dtag.VORBIS:
		return tagfile.ContainerOggVorbis
	}
	return tagfile.ContainerUnknown
}

func codecOf(md dtag.Metadata) string {
	if md.FileType() == dtag.ALAC {
		return "ALAC"
	}
	return ""
}

// legacyFields maps an ID3v1 trailer to its seven logical fields. The
// parser only reports the trailer when the file carries no ID3v2 tag.
func legacyFields(md dtag.Metadata) map[string]string {
	fields := make(map[string]string)
	put := func(key, val string) {
		if val != "" {
			fields[key] = val
		}
	}
	put("TITLE", md.Title())
	put("ARTIST", md.Artist())
	put("ALBUM", md.Album())
	put("COMMENT", md.Comment())
	put("GENRE", md.Genre())
	if y := md.Year(); y > 0 {
		put("YEAR", strconv.Itoa(y))
	}
	if n, _ := md.Track(); n > 0 {
		put("TRACK", strconv.Itoa(n))
	}
	return fields
}

func normalize(md dtag.Metadata) map[string][]string {
	props := make(map[string][]string)
	put := func(key, val string) {
		if val != "" {
			props[key] = append(props[key], val)
		}
	}
	put("TITLE", md.Title())
	put("ALBUM", md.Album())
	put("ARTIST", md.Artist())
	put("ALBUMARTIST", md.AlbumArtist())
	put("COMPOSER", md.Composer())
	put("GENRE", md.Genre())
	put("LYRICS", md.Lyrics())
	put("COMMENT", md.Comment())
	if y := md.Year(); y > 0 {
		put("DATE", strconv.Itoa(y))
	}
	if n, total := md.Track(); n > 0 {
		put("TRACKNUMBER", strconv.Itoa(n))
		if total > 0 {
			put("TRACKTOTAL", strconv.Itoa(total))
		}
	}
	if n, total := md.Disc(); n > 0 {
		put("DISCNUMBER", strconv.Itoa(n))
		if total > 0 {
			put("DISCTOTAL", strconv.Itoa(total))
		}
	}
	return props
}

// probeMP4 walks the atom tree for duration, channel count and codec. The
// audio track's timescale doubles as the sample rate, and bitrate is the
// whole-file average. Returns nil when the container cannot be probed.
func probeMP4(r io.ReadSeeker, codec string) *tagfile.AudioProperties {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	info, err := gomp4.Probe(r)
	if err != nil || info.Timescale == 0 {
		return nil
	}

	ap := &tagfile.AudioProperties{
		LengthMs: int(info.Duration * 1000 / uint64(info.Timescale)),
		Codec:    codec,
	}
	for _, tr := range info.Tracks {
		if tr.MP4A == nil {
			continue
		}
		ap.Channels = int(tr.MP4A.ChannelCount)
		ap.SampleRate = int(tr.Timescale)
		if tr.Codec == gomp4.CodecMP4A {
			ap.Codec = "AAC"
		}
		break
	}
	if ap.LengthMs > 0 {
		ap.Bitrate = int(size * 8 / int64(ap.LengthMs))
	}
	return ap
}

func (f *file) Container() tagfile.Container { return f.container }

func (f *file) AudioProperties() *tagfile.AudioProperties {
	if f.audio == nil {
		return nil
	}
	ap := *f.audio
	return &ap
}

// ID3v1 implements tagfile.ID3v1File.
func (f *file) ID3v1() map[string]string {
	if f.id3v1 == nil {
		return nil
	}
	out := make(map[string]string, len(f.id3v1))
	for k, v := range f.id3v1 {
		out[k] = v
	}
	return out
}

func (f *file) Properties() map[string][]string {
	out := make(map[string][]string, len(f.props))
	for k, vs := range f.props {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// SetProperties updates the in-memory view only. The change can never be
// persisted; Save reports the backend read-only.
func (f *file) SetProperties(props map[string][]string) {
	f.props = props
}

func (f *file) Pictures() ([]tagfile.Picture, error) {
	return append([]tagfile.Picture(nil), f.pics...), nil
}

func (f *file) SetPictures(pics []tagfile.Picture) error {
	f.pics = append([]tagfile.Picture(nil), pics...)
	return nil
}

func (f *file) Save() error {
	return &tagbridge.UnsupportedWriteError{
		Format: tagbridge.Classify(f),
		Reason: "litefile backend is read-only",
	}
}

func (f *file) Close() error {
	if f.closer != nil {
		return f.closer.Close()
	}
	return nil
}
