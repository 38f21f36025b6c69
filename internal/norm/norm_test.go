package norm

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deluan/tagbridge/internal/types"
	"github.com/deluan/tagbridge/tagfile"
)

// fakeFile is a property bag with a failable Save.
type fakeFile struct {
	tagfile.File
	props   map[string][]string
	saves   int
	saveErr error
}

func (f *fakeFile) Properties() map[string][]string {
	out := make(map[string][]string, len(f.props))
	for k, vs := range f.props {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func (f *fakeFile) SetProperties(props map[string][]string) {
	f.props = props
}

func (f *fakeFile) Save() error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	return nil
}

func TestReadRows_OneRowPerValue(t *testing.T) {
	f := &fakeFile{props: map[string][]string{
		"ARTIST": {"A", "B"},
		"TITLE":  {"Song"},
	}}

	rows := ReadRows(f)

	// Map iteration order is not fixed; compare sorted.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Key != rows[j].Key {
			return rows[i].Key < rows[j].Key
		}
		return rows[i].Value < rows[j].Value
	})
	assert.Equal(t, types.Rows{
		{Key: "ARTIST", Value: "A"},
		{Key: "ARTIST", Value: "B"},
		{Key: "TITLE", Value: "Song"},
	}, rows)
}

func TestReadRows_Empty(t *testing.T) {
	f := &fakeFile{props: map[string][]string{}}
	assert.Empty(t, ReadRows(f))
}

func TestApplyRows_Merge(t *testing.T) {
	f := &fakeFile{props: map[string][]string{
		"ARTIST": {"Old"},
		"ALBUM":  {"Kept"},
	}}

	err := ApplyRows(f, types.Rows{{Key: "ARTIST", Value: "New"}}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"New"}, f.props["ARTIST"])
	assert.Equal(t, []string{"Kept"}, f.props["ALBUM"])
	assert.Equal(t, 1, f.saves)
}

func TestApplyRows_Clear(t *testing.T) {
	f := &fakeFile{props: map[string][]string{
		"ARTIST": {"Old"},
		"ALBUM":  {"Dropped"},
	}}

	err := ApplyRows(f, types.Rows{{Key: "ARTIST", Value: "New"}}, true)
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{"ARTIST": {"New"}}, f.props)
}

func TestApplyRows_EmptyValueErasesKey(t *testing.T) {
	f := &fakeFile{props: map[string][]string{
		"COMMENT": {"Remove me"},
		"TITLE":   {"Song"},
	}}

	err := ApplyRows(f, types.Rows{{Key: "COMMENT", Value: ""}}, false)
	require.NoError(t, err)

	_, ok := f.props["COMMENT"]
	assert.False(t, ok)
	assert.Equal(t, []string{"Song"}, f.props["TITLE"])
}

func TestApplyRows_MultiValueSplit(t *testing.T) {
	f := &fakeFile{props: map[string][]string{}}

	err := ApplyRows(f, types.Rows{{Key: "GENRE", Value: "Rock\vPop\vJazz"}}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Rock", "Pop", "Jazz"}, f.props["GENRE"])
}

func TestApplyRows_LaterRowWins(t *testing.T) {
	f := &fakeFile{props: map[string][]string{}}

	rows := types.Rows{
		{Key: "ARTIST", Value: "First"},
		{Key: "ARTIST", Value: "Second"},
	}
	err := ApplyRows(f, rows, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Second"}, f.props["ARTIST"])
}

func TestApplyRows_SaveFailure(t *testing.T) {
	boom := errors.New("read-only filesystem")
	f := &fakeFile{props: map[string][]string{}, saveErr: boom}

	err := ApplyRows(f, types.Rows{{Key: "TITLE", Value: "Song"}}, false)

	var saveErr *types.SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "write tags", saveErr.Op)
	assert.ErrorIs(t, err, boom)
}
