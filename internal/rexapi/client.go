package rexapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rexradio/wrench/internal/activity"
	"github.com/rexradio/wrench/internal/logging"
)

const (
	defaultBaseURL   = "http://localhost:8000"
	defaultUserAgent = "wrench/0.1"
	requestTimeout   = 10 * time.Second

	// Response bodies shown to the operator are clipped to this length.
	bodyClip = 600
)

// Client performs signed calls against the configuration service.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	signer    *Signer
	userAgent string
	feed      *activity.Feed
	log       logging.Logger
	now       func() time.Time
}

// NewClient builds a Client for the given base URL. feed and log may be nil.
func NewClient(baseURL string, signer *Signer, feed *activity.Feed, log logging.Logger) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		signer:    signer,
		userAgent: defaultUserAgent,
		feed:      feed,
		log:       log,
		now:       time.Now,
	}, nil
}

// FetchField retrieves one configuration field. HTTP 400 means the field has
// no value yet and yields an empty Field, not an error.
func (c *Client) FetchField(ctx context.Context, field string) (Field, error) {
	if c == nil {
		return Field{}, fmt.Errorf("client is nil")
	}
	path := "/config/" + url.PathEscape(field)
	op := "GET " + path

	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		c.record("[%s] error: %v", op, err)
		return Field{}, err
	}
	switch {
	case status == http.StatusOK:
		var payload Field
		if err := json.Unmarshal(body, &payload); err != nil {
			c.record("[%s] decode error", op)
			return Field{}, fmt.Errorf("decode response: %w", err)
		}
		if payload.Name == "" {
			payload.Name = field
		}
		c.record("[%s] ok", op)
		return payload, nil
	case status == http.StatusBadRequest:
		// Field not set yet.
		c.record("[%s] 400 empty", op)
		return Field{Name: field}, nil
	default:
		c.record("[%s] %d fail", op, status)
		return Field{}, &StatusError{Op: op, Status: status, Body: clip(string(body))}
	}
}

// PatchField submits a single-element patch list for one field. Only HTTP
// 200 counts as success; callers decide whether to re-trigger, nothing is
// retried here.
func (c *Client) PatchField(ctx context.Context, field string, value FieldValue) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	payload, err := json.Marshal([]Field{{Name: field, Value: value}})
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}
	op := "PATCH /config"

	status, body, err := c.do(ctx, http.MethodPatch, "/config", payload)
	if err != nil {
		c.record("[%s] error: %v", op, err)
		return err
	}
	if status != http.StatusOK {
		c.record("[%s] %d fail: %s", op, status, clip(string(body)))
		return &StatusError{Op: op, Status: status, Body: clip(string(body))}
	}
	c.record("[%s] %d ok", op, status)
	return nil
}

// ListPresenters retrieves the presenter roster.
func (c *Client) ListPresenters(ctx context.Context) ([]Presenter, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	op := "GET /presenters"

	status, body, err := c.do(ctx, http.MethodGet, "/presenters", nil)
	if err != nil {
		c.record("[%s] error: %v", op, err)
		return nil, err
	}
	if status != http.StatusOK {
		c.record("[%s] %d fail", op, status)
		return nil, &StatusError{Op: op, Status: status, Body: clip(string(body))}
	}
	var items []Presenter
	if err := json.Unmarshal(body, &items); err != nil {
		c.record("[%s] decode error", op)
		return nil, fmt.Errorf("decode response: %w", err)
	}
	c.record("[%s] %d item(s)", op, len(items))
	return items, nil
}

// CreatePresenter submits a new presenter record. 200 and 201 are success.
func (c *Client) CreatePresenter(ctx context.Context, p Presenter) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if p.Schedules == nil {
		p.Schedules = []ScheduleEntry{}
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode presenter: %w", err)
	}
	op := "POST /presenters"

	status, body, err := c.do(ctx, http.MethodPost, "/presenters", payload)
	if err != nil {
		c.record("[%s] error: %v", op, err)
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		c.record("[%s] %d fail: %s", op, status, clip(string(body)))
		return &StatusError{Op: op, Status: status, Body: clip(string(body))}
	}
	c.record("[%s] %d ok", op, status)
	return nil
}

// do signs and executes one request, returning the status code and raw body.
// The timestamp is taken here, immediately before the request is built, so
// the signed message and the x-timestamp header always agree.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	ts := c.now().Unix()
	sig, err := c.signer.Sign(method, path, body, ts)
	if err != nil {
		return 0, nil, err
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-signature", sig)
	req.Header.Set("x-timestamp", strconv.FormatInt(ts, 10))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug(ctx, "request", "method", method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	c.log.Debug(ctx, "response", "method", method, "path", path, "status", resp.StatusCode)
	return resp.StatusCode, respBody, nil
}

func (c *Client) record(format string, args ...any) {
	if c.feed != nil {
		c.feed.Addf(format, args...)
	}
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > bodyClip {
		return s[:bodyClip] + "…"
	}
	return s
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
