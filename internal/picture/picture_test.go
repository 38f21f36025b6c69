package picture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

type fakeFile struct {
	tagfile.File
	pics    []tagfile.Picture
	picsErr error
	setErr  error
	saveErr error
	saves   int
}

func (f *fakeFile) Pictures() ([]tagfile.Picture, error) {
	if f.picsErr != nil {
		return nil, f.picsErr
	}
	return append([]tagfile.Picture(nil), f.pics...), nil
}

func (f *fakeFile) SetPictures(pics []tagfile.Picture) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.pics = pics
	return nil
}

func (f *fakeFile) Save() error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	return nil
}

func twoPics() []tagfile.Picture {
	return []tagfile.Picture{
		{Type: "Front Cover", MIMEType: "image/jpeg", Data: []byte{0xFF, 0xD8}},
		{Type: "Back Cover", Description: "rear", MIMEType: "image/png", Data: []byte{0x89, 0x50}},
	}
}

func TestDescribe(t *testing.T) {
	f := &fakeFile{pics: twoPics()}

	descs := Describe(f)

	require.Len(t, descs, 2)
	assert.Equal(t, types.ImageDesc{Type: "Front Cover", MIMEType: "image/jpeg"}, descs[0])
	assert.Equal(t, types.ImageDesc{Type: "Back Cover", Description: "rear", MIMEType: "image/png"}, descs[1])
}

func TestDescribe_NoPictures(t *testing.T) {
	assert.Nil(t, Describe(&fakeFile{}))
	assert.Nil(t, Describe(&fakeFile{picsErr: errors.New("unreadable")}))
}

func TestFetch(t *testing.T) {
	f := &fakeFile{pics: twoPics()}

	data, err := Fetch(f, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, data)
}

func TestFetch_OutOfRange(t *testing.T) {
	f := &fakeFile{pics: twoPics()}

	for _, index := range []int{-1, 2, 100} {
		_, err := Fetch(f, index)
		var notFound *types.ImageNotFoundError
		require.ErrorAs(t, err, &notFound, "index %d", index)
		assert.Equal(t, index, notFound.Index)
		assert.Equal(t, 2, notFound.Count)
	}
}

func TestApply_DeleteInRange(t *testing.T) {
	f := &fakeFile{pics: twoPics()}

	err := Apply(f, nil, 0, "", "", "")
	require.NoError(t, err)

	require.Len(t, f.pics, 1)
	assert.Equal(t, "Back Cover", f.pics[0].Type)
	assert.Equal(t, 1, f.saves)
}

func TestApply_DeleteOutOfRangeStillSaves(t *testing.T) {
	f := &fakeFile{pics: twoPics()}

	err := Apply(f, nil, 99, "", "", "")
	require.NoError(t, err)

	// Nothing removed, but the save still happened.
	assert.Len(t, f.pics, 2)
	assert.Equal(t, 1, f.saves)
}

func TestApply_ReplaceInRange(t *testing.T) {
	f := &fakeFile{pics: twoPics()}

	err := Apply(f, []byte{1, 2, 3}, 0, "Front Cover", "new art", "image/png")
	require.NoError(t, err)

	require.Len(t, f.pics, 2)
	assert.Equal(t, []byte{1, 2, 3}, f.pics[0].Data)
	assert.Equal(t, "new art", f.pics[0].Description)
	assert.Equal(t, "image/png", f.pics[0].MIMEType)
}

func TestApply_AppendOutOfRange(t *testing.T) {
	f := &fakeFile{pics: twoPics()}

	err := Apply(f, []byte{9}, 5, "Other", "", "image/gif")
	require.NoError(t, err)

	require.Len(t, f.pics, 3)
	assert.Equal(t, []byte{9}, f.pics[2].Data)
}

func TestApply_AppendToEmpty(t *testing.T) {
	f := &fakeFile{}

	err := Apply(f, []byte{9}, 0, "Front Cover", "", "image/jpeg")
	require.NoError(t, err)

	require.Len(t, f.pics, 1)
}

func TestApply_CommitFailureIsNotSaveError(t *testing.T) {
	f := &fakeFile{pics: twoPics(), setErr: errors.New("list rejected")}

	err := Apply(f, []byte{1}, 0, "", "", "")

	require.Error(t, err)
	var saveErr *types.SaveError
	assert.False(t, errors.As(err, &saveErr))
	assert.Equal(t, 0, f.saves)
}

func TestApply_SaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	f := &fakeFile{pics: twoPics(), saveErr: boom}

	err := Apply(f, []byte{1}, 0, "", "", "")

	var saveErr *types.SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "write image", saveErr.Op)
	assert.ErrorIs(t, err, boom)
}
