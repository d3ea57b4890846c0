package rexapi

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/rexradio/wrench/internal/session"
)

// Signer computes the request signature the Rex Radio backend verifies.
// The canonical message is the timestamp, method, path, and body concatenated
// in that order with no separators; the signature is HMAC-SHA512 over that
// message under the session key, base64 encoded.
type Signer struct {
	session *session.Session
}

// NewSigner builds a Signer bound to the given session.
func NewSigner(s *session.Session) *Signer {
	return &Signer{session: s}
}

// Sign produces the x-signature value for one request. ts must be the same
// second-granularity timestamp sent in x-timestamp. Returns
// session.ErrNoKey when no key has been captured.
func (s *Signer) Sign(method, path string, body []byte, ts int64) (string, error) {
	if err := s.session.Require(); err != nil {
		return "", err
	}
	mac := hmac.New(sha512.New, s.session.Key())
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte(method))
	mac.Write([]byte(path))
	mac.Write(body)
	return strings.TrimSpace(base64.StdEncoding.EncodeToString(mac.Sum(nil))), nil
}
