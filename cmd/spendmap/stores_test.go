package main

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/spendmap/pkg/store"
)

func TestGetStore(t *testing.T) {
	dir := t.TempDir()

	s, err := getStore("jsonfile:"+filepath.Join(dir, "out.json"), zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &store.JSONFile{}, s)
	_, isLedger := s.(store.Ledger)
	assert.False(t, isLedger)

	s, err = getStore("sqlite:"+filepath.Join(dir, "out.db"), zerolog.Nop())
	require.NoError(t, err)
	defer closeStore(s)
	_, isLedger = s.(store.Ledger)
	assert.True(t, isLedger)

	for _, bad := range []string{"", "out.json", "sqlite:"} {
		_, err := getStore(bad, zerolog.Nop())
		assert.Error(t, err, bad)
	}
}

func TestPick(t *testing.T) {
	assert.Equal(t, "flag", pick("flag", "conf"))
	assert.Equal(t, "conf", pick("", "conf"))
}
