package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"time-tracker/client/core"
)

const maxResponseBytes = 4 << 20

type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("server url %q: want http(s)://host[:port]", baseURL)
	}

	return &Client{
		log:     log,
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

var _ core.Tracker = (*Client)(nil)

type entryIn struct {
	Category    string `json:"category"`
	Minutes     any    `json:"minutes"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp,omitempty"`
}

func formBody(f core.EntryForm) entryIn {
	return entryIn{
		Category:    strings.TrimSpace(f.Category),
		Minutes:     f.MinutesValue(),
		Description: strings.TrimSpace(f.Description),
	}
}

type mutationOut struct {
	Success bool       `json:"success"`
	Entry   core.Entry `json:"entry"`
	Deleted int64      `json:"deleted"`
}

func (c *Client) AddEntry(ctx context.Context, f core.EntryForm) (core.Entry, error) {
	in := formBody(f)
	in.Timestamp = strings.TrimSpace(f.Timestamp)

	var out mutationOut
	if err := c.do(ctx, http.MethodPost, "/api/entries", in, &out); err != nil {
		return core.Entry{}, err
	}
	return out.Entry, nil
}

// ListEntries lists every entry when search is blank. A search response that
// is not JSON counts as no matches.
func (c *Client) ListEntries(ctx context.Context, search string) ([]core.Entry, error) {
	path := "/api/entries"
	search = strings.TrimSpace(search)
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	var out []core.Entry
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	var syntaxErr *json.SyntaxError
	if search != "" && errors.As(err, &syntaxErr) {
		c.log.Warn("search returned a non-json body", "search", search, "error", err)
		return []core.Entry{}, nil
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []core.Entry{}
	}
	return out, nil
}

func (c *Client) GetEntry(ctx context.Context, id int64) (core.Entry, error) {
	var out core.Entry
	if err := c.do(ctx, http.MethodGet, "/api/entries/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return core.Entry{}, err
	}
	return out, nil
}

func (c *Client) UpdateEntry(ctx context.Context, id int64, f core.EntryForm) (core.Entry, error) {
	var out mutationOut
	if err := c.do(ctx, http.MethodPut, "/api/entries/"+strconv.FormatInt(id, 10), formBody(f), &out); err != nil {
		return core.Entry{}, err
	}
	return out.Entry, nil
}

func (c *Client) DeleteAll(ctx context.Context) (int64, error) {
	var out mutationOut
	if err := c.do(ctx, http.MethodPost, "/api/entries:delete-all", nil, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}

func (c *Client) Stats(ctx context.Context) (core.Stats, error) {
	var out core.Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return core.Stats{}, err
	}
	if out.Week == nil {
		out.Week = map[string]int64{}
	}
	if out.Month == nil {
		out.Month = map[string]int64{}
	}
	return out, nil
}

// Health reports the server status. A 503 still decodes the body so the caller
// can show which service is down.
func (c *Client) Health(ctx context.Context) (core.Health, error) {
	var out core.Health
	err := c.do(ctx, http.MethodGet, "/api/health", nil, &out)
	if err != nil && !errors.Is(err, core.ErrUnavailable) {
		return core.Health{}, err
	}
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w: %v", method, path, core.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}
	c.log.Debug("response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		apiErr := &core.APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
		// health still answers with a body worth decoding
		if out != nil && resp.StatusCode == http.StatusServiceUnavailable {
			_ = json.Unmarshal(raw, out)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(raw))
}
