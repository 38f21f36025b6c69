// Package memfile is a complete in-memory tag library.
//
// It implements every tagfile interface, including the raw ID3v2, ID3v1,
// MP4 and ASF views, without touching the filesystem. Files are registered on an
// Opener under virtual paths; each Open hands out an independent session
// whose mutations become visible to later sessions only after Save. The
// package exists primarily for tests, but it is a full implementation and
// works anywhere a real backend would.
package memfile

import (
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/deluan/tagbridge"
	"github.com/deluan/tagbridge/tagfile"
)

// Default is a shared Opener, registered under the backend name "mem".
var Default = NewOpener()

func init() {
	tagbridge.RegisterOpener("mem", Default)
}

// File is one in-memory audio file. The exported fields describe its
// content and are read directly by tests; the methods implement
// tagfile.File and the raw-view interfaces on top of them.
//
// A File used as an Opener template is the persistent store. Sessions
// handed out by Open are deep copies that write back into the template on
// Save.
type File struct {
	Format tagfile.Container
	Audio  *tagfile.AudioProperties
	Tags   map[string][]string
	Pics   []tagfile.Picture

	ID3    *tagfile.ID3v2Tag
	// ID3v1Fields backs the ID3v1 view. nil means no ID3v1 trailer.
	ID3v1Fields map[string]string
	MP4Tag *tagfile.MP4Tag
	ASFTag *tagfile.ASFTag

	// Failure injection. When set, the corresponding method returns the
	// error instead of doing its work.
	SaveErr        error
	PicturesErr    error
	SetPicturesErr error

	// Saves and Closes count successful calls.
	Saves  int
	Closes int

	store *File
}

// New returns a File of the given container type with empty tags.
func New(c tagfile.Container) *File {
	return &File{
		Format: c,
		Tags:   make(map[string][]string),
	}
}

func (f *File) Container() tagfile.Container { return f.Format }

func (f *File) AudioProperties() *tagfile.AudioProperties {
	if f.Audio == nil {
		return nil
	}
	ap := *f.Audio
	return &ap
}

func (f *File) Properties() map[string][]string {
	return copyTags(f.Tags)
}

func (f *File) SetProperties(props map[string][]string) {
	f.Tags = copyTags(props)
}

func (f *File) Pictures() ([]tagfile.Picture, error) {
	if f.PicturesErr != nil {
		return nil, f.PicturesErr
	}
	return copyPics(f.Pics), nil
}

func (f *File) SetPictures(pics []tagfile.Picture) error {
	if f.SetPicturesErr != nil {
		return f.SetPicturesErr
	}
	f.Pics = copyPics(pics)
	return nil
}

// Save writes the session's state back into the template it was opened
// from. Sessions already open against the same template keep their own
// snapshot.
func (f *File) Save() error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saves++
	if f.store != nil {
		f.store.Tags = copyTags(f.Tags)
		f.store.Pics = copyPics(f.Pics)
		f.store.ID3 = copyID3(f.ID3)
		f.store.ID3v1Fields = copyFields(f.ID3v1Fields)
		f.store.MP4Tag = copyMP4(f.MP4Tag)
		f.store.ASFTag = copyASF(f.ASFTag)
	}
	return nil
}

func (f *File) Close() error {
	f.Closes++
	return nil
}

// ID3v2 implements tagfile.ID3v2File.
func (f *File) ID3v2() *tagfile.ID3v2Tag { return f.ID3 }

// EnsureID3v2 implements tagfile.ID3v2File.
func (f *File) EnsureID3v2() *tagfile.ID3v2Tag {
	if f.ID3 == nil {
		f.ID3 = &tagfile.ID3v2Tag{}
	}
	return f.ID3
}

// ID3v1 implements tagfile.ID3v1File.
func (f *File) ID3v1() map[string]string { return copyFields(f.ID3v1Fields) }

// MP4 implements tagfile.MP4File.
func (f *File) MP4() *tagfile.MP4Tag { return f.MP4Tag }

// ASF implements tagfile.ASFFile.
func (f *File) ASF() *tagfile.ASFTag { return f.ASFTag }

func (f *File) clone() *File {
	c := &File{
		Format:         f.Format,
		Tags:           copyTags(f.Tags),
		Pics:           copyPics(f.Pics),
		ID3:            copyID3(f.ID3),
		ID3v1Fields:    copyFields(f.ID3v1Fields),
		MP4Tag:         copyMP4(f.MP4Tag),
		ASFTag:         copyASF(f.ASFTag),
		SaveErr:        f.SaveErr,
		PicturesErr:    f.PicturesErr,
		SetPicturesErr: f.SetPicturesErr,
	}
	if f.Audio != nil {
		ap := *f.Audio
		c.Audio = &ap
	}
	return c
}

func copyTags(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, vs := range m {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func copyFields(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyPics(pics []tagfile.Picture) []tagfile.Picture {
	out := make([]tagfile.Picture, len(pics))
	for i, p := range pics {
		p.Data = append([]byte(nil), p.Data...)
		out[i] = p
	}
	return out
}

func copyID3(t *tagfile.ID3v2Tag) *tagfile.ID3v2Tag {
	if t == nil {
		return nil
	}
	frames := make([]tagfile.Frame, len(t.Frames))
	for i, f := range t.Frames {
		f.Text = append([]string(nil), f.Text...)
		f.Synced = append([]tagfile.SyncedText(nil), f.Synced...)
		frames[i] = f
	}
	return &tagfile.ID3v2Tag{Frames: frames}
}

func copyMP4(t *tagfile.MP4Tag) *tagfile.MP4Tag {
	if t == nil {
		return nil
	}
	items := make(map[string]tagfile.Item, len(t.Items))
	for k, it := range t.Items {
		it.Strings = append([]string(nil), it.Strings...)
		data := make([][]byte, len(it.Data))
		for i, d := range it.Data {
			data[i] = append([]byte(nil), d...)
		}
		it.Data = data
		items[k] = it
	}
	return &tagfile.MP4Tag{Items: items}
}

func copyASF(t *tagfile.ASFTag) *tagfile.ASFTag {
	if t == nil {
		return nil
	}
	c := *t
	attrs := make([]tagfile.Attribute, len(t.Attributes))
	for i, a := range t.Attributes {
		a.Data = append([]byte(nil), a.Data...)
		attrs[i] = a
	}
	c.Attributes = attrs
	return &c
}

// Opener serves registered Files by virtual path or stream name.
type Opener struct {
	mu    sync.Mutex
	files map[string]*File

	// OpenErr, when set, makes every Open and OpenStream fail.
	OpenErr error

	// LastStyle records the read style of the most recent open.
	LastStyle tagfile.ReadStyle
}

// NewOpener returns an empty Opener.
func NewOpener() *Opener {
	return &Opener{files: make(map[string]*File)}
}

// Add registers f under path, replacing any earlier registration. The
// Opener keeps f as the persistent store for that path.
func (o *Opener) Add(path string, f *File) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.files[path] = f
}

// Get returns the template registered under path, or nil. Tests use it to
// observe what Save persisted.
func (o *Opener) Get(path string) *File {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.files[path]
}

// Open implements tagfile.Opener. It returns an independent session over
// the File registered at path.
func (o *Opener) Open(path string, style tagfile.ReadStyle) (tagfile.File, error) {
	return o.open(path, style)
}

// OpenStream implements tagfile.Opener. The session is selected by the
// stream's virtual name; the stream contents are read to verify the source
// is usable, mirroring the probing a real parser would do.
func (o *Opener) OpenStream(s tagfile.Stream, style tagfile.ReadStyle) (tagfile.File, error) {
	var probe [16]byte
	if s.Length() > 0 {
		if _, err := s.Read(probe[:]); err != nil {
			return nil, fmt.Errorf("probe %s: %w", s.Name(), err)
		}
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind %s: %w", s.Name(), err)
		}
	}
	return o.open(s.Name(), style)
}

func (o *Opener) open(path string, style tagfile.ReadStyle) (*File, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.LastStyle = style
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	tpl, ok := o.files[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	sess := tpl.clone()
	sess.store = tpl
	return sess, nil
}
