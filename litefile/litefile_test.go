package litefile

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deluan/tagbridge"
	"github.com/deluan/tagbridge/internal/bytesource"
	"github.com/deluan/tagbridge/tagfile"
)

// buildID3v2 builds a minimal ID3v2.3 tag with ISO-8859-1 text frames.
func buildID3v2(frames map[string]string) []byte {
	body := &bytes.Buffer{}
	for id, text := range frames {
		body.WriteString(id)
		binary.Write(body, binary.BigEndian, uint32(1+len(text)))
		body.Write([]byte{0, 0}) // frame flags
		body.WriteByte(0)        // ISO-8859-1
		body.WriteString(text)
	}

	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{3, 0, 0}) // v2.3, no flags
	size := body.Len()
	buf.Write([]byte{
		byte(size >> 21 & 0x7F),
		byte(size >> 14 & 0x7F),
		byte(size >> 7 & 0x7F),
		byte(size & 0x7F),
	})
	buf.Write(body.Bytes())
	return buf.Bytes()
}

// buildID3v1 builds a 128-byte ID3v1.1 trailer preceded by filler audio
// bytes. Genre 17 is "Rock" in the ID3v1 genre table.
func buildID3v1(title, artist, album, year, comment string, track, genre byte) []byte {
	pad := func(buf *bytes.Buffer, s string, width int) {
		b := make([]byte, width)
		copy(b, s)
		buf.Write(b)
	}

	buf := &bytes.Buffer{}
	buf.Write(make([]byte, 256)) // stand-in for audio frames
	buf.WriteString("TAG")
	pad(buf, title, 30)
	pad(buf, artist, 30)
	pad(buf, album, 30)
	pad(buf, year, 4)
	pad(buf, comment, 28)
	buf.WriteByte(0) // v1.1 marker
	buf.WriteByte(track)
	buf.WriteByte(genre)
	return buf.Bytes()
}

func writeTempMP3(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mp3")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOpen_MP3(t *testing.T) {
	path := writeTempMP3(t, buildID3v2(map[string]string{
		"TIT2": "Song",
		"TPE1": "Someone",
	}))

	f, err := Opener{}.Open(path, tagfile.ReadStyleAverage)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, tagfile.ContainerMPEG, f.Container())

	props := f.Properties()
	assert.Equal(t, []string{"Song"}, props["TITLE"])
	assert.Equal(t, []string{"Someone"}, props["ARTIST"])
}

func TestOpen_ID3v1Trailer(t *testing.T) {
	path := writeTempMP3(t, buildID3v1("Song", "Someone", "Album", "1999", "", 3, 17))

	f, err := Opener{}.Open(path, tagfile.ReadStyleAverage)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, tagfile.ContainerMPEG, f.Container())

	v1, ok := f.(tagfile.ID3v1File)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"TITLE":  "Song",
		"ARTIST": "Someone",
		"ALBUM":  "Album",
		"YEAR":   "1999",
		"TRACK":  "3",
		"GENRE":  "Rock",
	}, v1.ID3v1())
}

func TestOpen_ID3v2HasNoID3v1View(t *testing.T) {
	path := writeTempMP3(t, buildID3v2(map[string]string{"TIT2": "Song"}))

	f, err := Opener{}.Open(path, tagfile.ReadStyleAverage)
	require.NoError(t, err)
	defer f.Close()

	v1, ok := f.(tagfile.ID3v1File)
	require.True(t, ok)
	assert.Nil(t, v1.ID3v1())
}

func TestOpen_InvalidFile(t *testing.T) {
	path := writeTempMP3(t, []byte("certainly not audio data"))

	_, err := Opener{}.Open(path, tagfile.ReadStyleAverage)
	assert.ErrorIs(t, err, tagbridge.ErrInvalidFile)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Opener{}.Open(filepath.Join(t.TempDir(), "absent.mp3"), tagfile.ReadStyleAverage)
	assert.Error(t, err)
}

func TestOpenStream(t *testing.T) {
	data := buildID3v2(map[string]string{"TIT2": "Streamed"})
	src, err := bytesource.New(bytesource.FromReadSeeker(bytes.NewReader(data)), "s.mp3")
	require.NoError(t, err)

	f, err := Opener{}.OpenStream(src, tagfile.ReadStyleAverage)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, tagfile.ContainerMPEG, f.Container())
	assert.Equal(t, []string{"Streamed"}, f.Properties()["TITLE"])
}

func TestSave_ReadOnly(t *testing.T) {
	path := writeTempMP3(t, buildID3v2(map[string]string{"TIT2": "Song"}))

	f, err := Opener{}.Open(path, tagfile.ReadStyleAverage)
	require.NoError(t, err)
	defer f.Close()

	err = f.Save()
	var unsupported *tagbridge.UnsupportedWriteError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, tagbridge.FormatMPEG, unsupported.Format)
}

func TestAudioProperties_NonMP4IsNil(t *testing.T) {
	path := writeTempMP3(t, buildID3v2(map[string]string{"TIT2": "Song"}))

	f, err := Opener{}.Open(path, tagfile.ReadStyleAverage)
	require.NoError(t, err)
	defer f.Close()

	assert.Nil(t, f.AudioProperties())
}

func TestRegistersLiteBackend(t *testing.T) {
	assert.NotNil(t, tagbridge.Opener("lite"))
}
