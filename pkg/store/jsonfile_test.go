package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/spendmap/pkg/domain"
)

func TestWrite(t *testing.T) {
	jf := NewJSONFile(filepath.Join(t.TempDir(), "test.json"))

	err := jf.Write([]*domain.TaggedTransaction{
		{Category: "Food", Holder: "1"},
		{Category: "Rent", Holder: "2"},
	})
	require.NoError(t, err)

	got := []*domain.TaggedTransaction{}
	require.NoError(t, jf.Load(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "Rent", got[1].Category)

	// a second write appends
	require.NoError(t, jf.Write([]*domain.TaggedTransaction{{Category: "Travel", Holder: "1"}}))
	require.NoError(t, jf.Load(&got))
	require.Len(t, got, 3)
	assert.Equal(t, "Travel", got[2].Category)
}

func TestSaveKeepsOrderAndText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "categories.json")
	jf := NewJSONFile(path)

	cats := []string{"מזון", "Rent & Bills", "<misc>"}
	require.NoError(t, jf.Save(cats))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "מזון")
	assert.Contains(t, string(raw), "Rent & Bills")
	assert.Contains(t, string(raw), "\t\"<misc>\"")

	got := []string{}
	require.NoError(t, jf.Load(&got))
	assert.Equal(t, cats, got)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadMissing(t *testing.T) {
	jf := NewJSONFile(filepath.Join(t.TempDir(), "missing.json"))

	var v map[string]string
	err := jf.Load(&v)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
