// Package session holds the operator-supplied signing key for the lifetime
// of the process. The key is captured once at startup, lives only in memory,
// and must never be logged or persisted.
package session

import (
	"errors"
	"regexp"
)

// ErrNoKey is returned by Require when an authenticated flow runs before a
// key has been captured. Reaching it means the startup sequence is broken.
var ErrNoKey = errors.New("no signing key configured")

// ErrEmptyKey and ErrMalformedKey describe local validation failures during
// key entry; they never leave the entry flow.
var (
	ErrEmptyKey     = errors.New("key must not be empty")
	ErrMalformedKey = errors.New("key must be at least 32 hex characters")
)

var keyRe = regexp.MustCompile(`^[0-9a-fA-F]{32,}$`)

// ValidateKey checks the syntactic rules for an HMAC key: non-empty, hex
// only, minimum 32 characters. It does not contact the backend; a wrong key
// surfaces later as signature rejection on the first real request.
func ValidateKey(raw string) error {
	if raw == "" {
		return ErrEmptyKey
	}
	if !keyRe.MatchString(raw) {
		return ErrMalformedKey
	}
	return nil
}

// Session carries the signing key. Construct one at startup and thread it
// through every client; never read the key through any other path.
type Session struct {
	key string
}

// New returns an empty session awaiting key capture.
func New() *Session {
	return &Session{}
}

// Set validates and stores the key. The first successful Set is expected to
// be the only one.
func (s *Session) Set(raw string) error {
	if err := ValidateKey(raw); err != nil {
		return err
	}
	s.key = raw
	return nil
}

// Ready reports whether a key has been captured.
func (s *Session) Ready() bool {
	return s.key != ""
}

// Key returns the raw key bytes for signing. Callers must check Require
// first.
func (s *Session) Key() []byte {
	return []byte(s.key)
}

// Require guards authenticated flows; it returns ErrNoKey when no key has
// been captured.
func (s *Session) Require() error {
	if s == nil || s.key == "" {
		return ErrNoKey
	}
	return nil
}
