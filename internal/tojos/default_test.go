package tojos

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tojos/internal/mono"
)

// brokenMono fails every operation with err.
type brokenMono struct{ err error }

func (b brokenMono) Read() ([]map[string]string, error) { return nil, b.err }
func (b brokenMono) Write([]map[string]string) error    { return b.err }
func (b brokenMono) Close() error                       { return b.err }
func (b brokenMono) String() string                     { return "broken" }

func TestDefault_AddCreatesRecord(t *testing.T) {
	d := NewMemory()

	rec, err := d.Add("item-1")
	require.NoError(t, err)

	name, err := rec.Get(KeyID)
	require.NoError(t, err)
	assert.Equal(t, "item-1", name)
}

func TestDefault_AddExistingReturnsSameRecord(t *testing.T) {
	d := NewMemory()

	first, err := d.Add("item-1")
	require.NoError(t, err)
	require.NoError(t, first.Set("color", "red"))

	second, err := d.Add("item-1")
	require.NoError(t, err)

	color, err := second.Get("color")
	require.NoError(t, err)
	assert.Equal(t, "red", color)

	all, err := d.Select(All)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDefault_SelectFiltersInOrder(t *testing.T) {
	d := NewMemory()
	for _, name := range []string{"a", "b", "c"} {
		rec, err := d.Add(name)
		require.NoError(t, err)
		if name != "b" {
			require.NoError(t, rec.Set("kind", "odd"))
		}
	}

	odd, err := d.Select(func(r Record) bool {
		kind, err := r.Get("kind")
		return err == nil && kind == "odd"
	})
	require.NoError(t, err)
	require.Len(t, odd, 2)

	names := make([]string, 0, len(odd))
	for _, rec := range odd {
		name, err := rec.Get(KeyID)
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.Equal(t, []string{"a", "c"}, names)
}

func TestDefault_SelectEmptyStore(t *testing.T) {
	recs, err := NewMemory().Select(All)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestDefault_RecordOperations(t *testing.T) {
	d := NewMemory()
	rec, err := d.Add("item")
	require.NoError(t, err)

	ok, err := rec.Exists("size")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = rec.Get("size")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, rec.Set("size", "xl"))
	ok, err = rec.Exists("size")
	require.NoError(t, err)
	assert.True(t, ok)

	fields, err := rec.Map()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "item", "size": "xl"}, fields)

	// Map returns a copy.
	fields["size"] = "s"
	size, err := rec.Get("size")
	require.NoError(t, err)
	assert.Equal(t, "xl", size)
}

func TestDefault_SetIDRejected(t *testing.T) {
	rec, err := NewMemory().Add("item")
	require.NoError(t, err)

	err = rec.Set(KeyID, "other")
	assert.ErrorIs(t, err, ErrReadOnlyKey)
}

func TestDefault_RecordGoneFromMedium(t *testing.T) {
	m := mono.NewMemory()
	d := NewDefault(m)
	rec, err := d.Add("item")
	require.NoError(t, err)

	require.NoError(t, m.Write(nil))

	_, err = rec.Get("x")
	assert.ErrorIs(t, err, ErrNoRecord)
	assert.ErrorIs(t, rec.Set("x", "y"), ErrNoRecord)
}

func TestDefault_MediumErrorsWrapped(t *testing.T) {
	boom := errors.New("medium down")
	d := NewDefault(brokenMono{err: boom})

	_, err := d.Add("a")
	assert.ErrorIs(t, err, boom)

	_, err = d.Select(All)
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, d.Close(), boom)
	assert.Equal(t, "broken", d.String())
}

func TestDefault_OverYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tojos.yml")

	d := NewDefault(mono.NewYAML(path))
	rec, err := d.Add("item-1")
	require.NoError(t, err)
	require.NoError(t, rec.Set("color", "red"))
	require.NoError(t, d.Close())

	reopened := NewDefault(mono.NewYAML(path))
	recs, err := reopened.Select(All)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	fields, err := recs[0].Map()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "item-1", "color": "red"}, fields)
}

func TestDefault_OverYAMLDecomposedName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tojos.yml")
	d := NewDefault(mono.NewYAML(path))

	decomposed := "cafe\u0301"
	composed := "caf\u00e9"

	rec, err := d.Add(decomposed)
	require.NoError(t, err)
	require.NoError(t, rec.Set("color", "red"))

	again, err := d.Add(decomposed)
	require.NoError(t, err)
	value, err := again.Get("color")
	require.NoError(t, err)
	assert.Equal(t, "red", value)

	_, err = d.Add(composed)
	require.NoError(t, err)

	recs, err := d.Select(All)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	fields, err := recs[0].Map()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": composed, "color": "red"}, fields)
}

func TestDefault_KeysNormalized(t *testing.T) {
	d := NewDefault(mono.NewYAML(filepath.Join(t.TempDir(), "tojos.yml")))

	rec, err := d.Add("item-1")
	require.NoError(t, err)
	require.NoError(t, rec.Set("cafe\u0301", "open"))

	ok, err := rec.Exists("caf\u00e9")
	require.NoError(t, err)
	assert.True(t, ok)

	value, err := rec.Get("cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "open", value)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{"id only", map[string]string{"id": "a"}, "a"},
		{"sorted keys", map[string]string{"id": "a", "z": "1", "b": "2"}, "a b=2 z=1"},
		{"empty value", map[string]string{"id": "a", "k": ""}, "a k="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.fields))
		})
	}
}

func TestDefaultRecord_String(t *testing.T) {
	rec, err := NewMemory().Add("a")
	require.NoError(t, err)
	require.NoError(t, rec.Set("k", "v"))

	assert.Equal(t, "a k=v", rec.(*defaultRecord).String())
}
