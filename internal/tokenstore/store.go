package tokenstore

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Store is the durable holder for the access/refresh token pair. It survives
// process restarts by persisting to a small JSON file. Absent values read as
// empty strings; reads never fail. Writes go through a temp file and rename
// so the pair is replaced atomically and a new access token is never paired
// on disk with a stale refresh token.
type Store struct {
	mu     sync.RWMutex
	path   string
	tokens tokenFile
	log    zerolog.Logger
}

type tokenFile struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func New(path string, logger zerolog.Logger) *Store {
	s := &Store{path: path, log: logger}
	s.load()
	return s
}

func (s *Store) load() {
	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("token store open failed")
		}
		return
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&s.tokens); err != nil && !errors.Is(err, io.EOF) {
		s.log.Warn().Err(err).Str("path", s.path).Msg("token store decode failed")
		s.tokens = tokenFile{}
	}
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.AccessToken
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.RefreshToken
}

func (s *Store) HasAccessToken() bool {
	return s.AccessToken() != ""
}

func (s *Store) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens.AccessToken = token
	s.persist()
}

func (s *Store) SetRefreshToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens.RefreshToken = token
	s.persist()
}

// SetPair writes both tokens in one durable update. An empty refreshToken
// keeps the stored one, covering backends that do not rotate on refresh.
func (s *Store) SetPair(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens.AccessToken = accessToken
	if refreshToken != "" {
		s.tokens.RefreshToken = refreshToken
	}
	s.persist()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokenFile{}
	s.persist()
}

func (s *Store) persist() {
	data, err := json.Marshal(s.tokens)
	if err != nil {
		s.log.Error().Err(err).Msg("token store marshal failed")
		return
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".prosono_tokens-*")
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("token store temp file failed")
		return
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		s.log.Error().Err(err).Msg("token store write failed")
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		s.log.Error().Err(err).Msg("token store close failed")
		return
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		s.log.Error().Err(err).Str("path", s.path).Msg("token store rename failed")
	}
}
