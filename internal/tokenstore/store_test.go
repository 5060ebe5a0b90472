package tokenstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.json")
	return New(path, zerolog.Nop()), path
}

func TestAbsentTokensReadEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.AccessToken())
	assert.Empty(t, s.RefreshToken())
	assert.False(t, s.HasAccessToken())
}

func TestTokensSurviveRestart(t *testing.T) {
	s, path := newTestStore(t)
	s.SetPair("access-1", "refresh-1")

	reopened := New(path, zerolog.Nop())
	assert.Equal(t, "access-1", reopened.AccessToken())
	assert.Equal(t, "refresh-1", reopened.RefreshToken())
}

func TestSetPairKeepsRefreshWhenNotRotated(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetPair("access-1", "refresh-1")
	s.SetPair("access-2", "")

	assert.Equal(t, "access-2", s.AccessToken())
	assert.Equal(t, "refresh-1", s.RefreshToken())
}

func TestClear(t *testing.T) {
	s, path := newTestStore(t)
	s.SetPair("access-1", "refresh-1")
	s.Clear()

	assert.Empty(t, s.AccessToken())
	assert.Empty(t, s.RefreshToken())

	reopened := New(path, zerolog.Nop())
	assert.Empty(t, reopened.AccessToken())
	assert.Empty(t, reopened.RefreshToken())
}

func TestCorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := New(path, zerolog.Nop())
	assert.Empty(t, s.AccessToken())
}
