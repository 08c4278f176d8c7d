// Package dspace fetches item metadata and bitstream listings from a
// DSpace REST API.
package dspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/antonholmquist/jason"
	"golang.org/x/sync/errgroup"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/metadata"
)

// Exported errors
var (
	ErrNotFound       = errors.New("item not found in repository")
	ErrUnexpectedResp = errors.New("unexpected response code")
	ErrInvalidHandle  = errors.New("invalid handle")
)

// DefaultPageSize is the bitstream page size when none is configured.
const DefaultPageSize = 250

// Client talks to one DSpace REST endpoint.
type Client struct {
	// BaseURL is the repository root, e.g. https://conservancy.umn.edu
	BaseURL string

	// HTTPClient performs requests; a shared client with a 30s timeout is used when nil
	HTTPClient *http.Client

	// PageSize bounds each bitstream listing request
	PageSize int
}

// NewClient creates a Client for baseURL.
func NewClient(baseURL string, timeout time.Duration, pageSize int) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		PageSize:   pageSize,
	}
}

// Handle is a persistent identifier of the form prefix/suffix.
type Handle struct {
	Prefix string
	Suffix string
}

func (h Handle) String() string {
	return h.Prefix + "/" + h.Suffix
}

// ParseHandle extracts the handle from a handle URL such as
// https://hdl.handle.net/11299/220269. The last two path segments are the
// prefix and suffix, so a bare "11299/220269" is accepted too.
func ParseHandle(handleURL string) (Handle, error) {
	s := strings.TrimSpace(handleURL)
	if u, err := url.Parse(s); err == nil && u.Host != "" {
		s = u.Path
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' })
	if len(parts) < 2 {
		return Handle{}, fmt.Errorf("%w: %q", ErrInvalidHandle, handleURL)
	}
	return Handle{
		Prefix: parts[len(parts)-2],
		Suffix: parts[len(parts)-1],
	}, nil
}

// Item is everything the renderers need about one repository item.
type Item struct {
	Handle     Handle
	ID         string
	Records    []metadata.Record
	Bitstreams []bitstream.Entry
}

// FetchItem resolves handleURL and downloads the item's metadata and
// bitstream listing concurrently.
func (c *Client) FetchItem(ctx context.Context, handleURL string) (*Item, error) {
	h, err := ParseHandle(handleURL)
	if err != nil {
		return nil, err
	}
	id, err := c.ResolveHandle(ctx, h)
	if err != nil {
		return nil, err
	}
	slog.Debug("resolved handle", "handle", h.String(), "id", id)

	item := &Item{Handle: h, ID: id}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := c.Metadata(gctx, id)
		if err != nil {
			return fmt.Errorf("fetching metadata: %w", err)
		}
		item.Records = records
		return nil
	})
	g.Go(func() error {
		entries, err := c.Bitstreams(gctx, id)
		if err != nil {
			return fmt.Errorf("fetching bitstreams: %w", err)
		}
		item.Bitstreams = entries
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return item, nil
}

// ResolveHandle returns the internal item id for h. DSpace 5 reports a
// numeric "id"; DSpace 6 adds a "uuid" which is preferred when present.
func (c *Client) ResolveHandle(ctx context.Context, h Handle) (string, error) {
	v, err := c.doJasonGet(ctx, "/rest/handle/"+h.Prefix+"/"+h.Suffix)
	if err != nil {
		return "", err
	}
	obj, err := v.Object()
	if err != nil {
		return "", fmt.Errorf("decoding handle %s: %w", h, err)
	}
	if uuid, err := obj.GetString("uuid"); err == nil && uuid != "" {
		return uuid, nil
	}
	if id, err := obj.GetInt64("id"); err == nil {
		return strconv.FormatInt(id, 10), nil
	}
	if id, err := obj.GetString("id"); err == nil && id != "" {
		return id, nil
	}
	return "", fmt.Errorf("handle %s: response has no item id", h)
}

// Metadata returns the item's metadata records in repository order.
func (c *Client) Metadata(ctx context.Context, id string) ([]metadata.Record, error) {
	v, err := c.doJasonGet(ctx, "/rest/items/"+url.PathEscape(id)+"/metadata")
	if err != nil {
		return nil, err
	}
	return decodeMetadata(v)
}

// Bitstreams returns every bitstream of the item, following pages of
// PageSize until a short page is returned. A page that starts with the same
// entry as the first page means the server ignored the offset, and the
// listing ends there.
func (c *Client) Bitstreams(ctx context.Context, id string) ([]bitstream.Entry, error) {
	limit := c.PageSize
	if limit <= 0 {
		limit = DefaultPageSize
	}

	var all []bitstream.Entry
	for offset := 0; ; offset += limit {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		q.Set("offset", strconv.Itoa(offset))
		v, err := c.doJasonGet(ctx, "/rest/items/"+url.PathEscape(id)+"/bitstreams?"+q.Encode())
		if err != nil {
			return nil, err
		}
		page, err := decodeBitstreams(v)
		if err != nil {
			return nil, err
		}
		if offset > 0 && len(page) > 0 && page[0] == all[0] {
			slog.Warn("bitstream listing ignores offset", "id", id, "offset", offset)
			return all, nil
		}
		all = append(all, page...)
		slog.Debug("fetched bitstream page", "id", id, "offset", offset, "count", len(page))
		if len(page) < limit {
			return all, nil
		}
	}
}

func (c *Client) doJasonGet(ctx context.Context, path string) (*jason.Value, error) {
	path = c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return jason.NewValueFromReader(resp.Body)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	default:
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedResp, resp.StatusCode, path)
	}
}

// defaultHTTPClient serves a Client whose HTTPClient is nil.
var defaultHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	client := c.HTTPClient
	if client == nil {
		client = defaultHTTPClient
	}
	return client.Do(req)
}
