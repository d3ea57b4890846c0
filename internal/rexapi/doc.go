// Package rexapi provides the authenticated HTTP client for the Rex Radio
// configuration service.
//
// # Overview
//
// This package handles everything between the UI and the station backend:
// request signing, the wire types for configuration fields and presenters,
// and the small set of endpoints the tool uses. Every request carries a
// time-bound HMAC signature; nothing is sent unsigned.
//
// # Architecture
//
// The package is split into three files:
//
//   - signer.go: HMAC-SHA512 request signing over timestamp, method, path, body
//   - client.go: HTTP client, endpoint methods, base URL normalization
//   - types.go: Field, FieldValue, ScheduleEntry, Presenter, StatusError
//
// # Endpoints
//
// The client supports the four operations the tool performs:
//
//   - GET /config/{field}: Read one configuration field
//   - PATCH /config: Write one configuration field (single-element array body)
//   - GET /presenters: List the presenter roster
//   - POST /presenters: Create a presenter
//
// # Request Signing
//
// Each request is signed immediately before dispatch. The signature input is
// the concatenation, with no separators, of:
//
//	<unix timestamp><METHOD><path><raw body bytes>
//
// The MAC is HMAC-SHA512 keyed with the session key decoded as ASCII hex
// text, encoded as standard base64. Two headers carry it:
//
//	x-signature: <base64 MAC>
//	x-timestamp: <same unix timestamp>
//
// The timestamp in the header and the one signed are always the same
// instant; the signer takes the timestamp as an argument rather than
// reading the clock itself so the two can never diverge.
//
// # The 400-means-unset Convention
//
// The backend answers GET /config/{field} with HTTP 400 when the field has
// never been set. FetchField translates that into an empty Field value, not
// an error; callers see "no value yet", which is what an operator editing a
// fresh station expects. All other non-200 statuses become a *StatusError.
//
// # Error Handling
//
// The client distinguishes:
//
//   - Missing session key: session.ErrNoKey, surfaced before any I/O
//   - Network errors: wrapped with context via fmt.Errorf
//   - HTTP errors: *StatusError carrying operation, status code, and the
//     verbatim response body for operator display
//
// Every request outcome, success or failure, is also recorded as one line
// in the activity feed. Response bodies are clipped before recording so a
// misbehaving backend cannot flood the feed.
//
// # Thread Safety
//
// The Client is safe for concurrent use; the underlying http.Client pools
// connections. In practice the UI issues one request at a time.
//
// # Testing Considerations
//
// The client's clock is a struct field, so tests pin it and verify exact
// signatures against httptest handlers. Use NewClient against an
// httptest.Server URL; no mocks are needed.
package rexapi
