// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collection is a read-only client for the Met collection API. It
// exposes the keyword search and per-object detail calls and converts every
// transport, status and decoding failure into a typed error.
package collection

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/met-explorer/internal/artwork"
	"github.com/pdiddy/met-explorer/internal/httputil"
	"github.com/pdiddy/met-explorer/pkg/types"
)

// SearchResponse is the body of the search endpoint.
type SearchResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// Client queries the collection API. Each call makes exactly one request.
type Client struct {
	httpClient    *http.Client
	pacer         *httputil.Pacer
	baseURL       string
	userAgent     string
	hasImagesOnly bool
}

// New builds a Client from cfg. When httpClient is nil a client with
// cfg.Timeout is created.
func New(cfg types.CollectionConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	base := cfg.BaseURL
	if base == "" {
		base = types.DefaultBaseURL
	}
	return &Client{
		httpClient:    httpClient,
		pacer:         httputil.NewPacer(cfg.RequestsPerSecond),
		baseURL:       strings.TrimRight(base, "/"),
		userAgent:     cfg.UserAgent,
		hasImagesOnly: cfg.HasImagesOnly,
	}
}

// Search returns the total match count and the matching object IDs in
// server order. Any failure is returned as a *SearchError.
func (c *Client) Search(ctx context.Context, keyword string) (SearchResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return SearchResponse{}, types.ErrEmptyKeyword
	}

	params := url.Values{"q": {keyword}}
	if c.hasImagesOnly {
		params.Set("hasImages", "true")
	}
	reqURL := c.baseURL + "/search?" + params.Encode()

	var sr SearchResponse
	if err := httputil.GetJSON(ctx, c.httpClient, c.pacer, reqURL, c.userAgent, &sr); err != nil {
		return SearchResponse{}, &SearchError{Keyword: keyword, Err: err}
	}
	if sr.Total < 0 {
		return SearchResponse{}, &SearchError{Keyword: keyword, Err: fmt.Errorf("negative total %d", sr.Total)}
	}
	if sr.ObjectIDs == nil {
		sr.ObjectIDs = []int{}
	}
	return sr, nil
}

// FetchDetail returns the raw record for one object. Any failure is
// returned as a *FetchError.
func (c *Client) FetchDetail(ctx context.Context, id int) (artwork.RawRecord, error) {
	reqURL := c.baseURL + "/objects/" + strconv.Itoa(id)

	var raw artwork.RawRecord
	if err := httputil.GetJSON(ctx, c.httpClient, c.pacer, reqURL, c.userAgent, &raw); err != nil {
		return nil, &FetchError{ObjectID: id, Err: err}
	}
	if raw == nil {
		return nil, &FetchError{ObjectID: id, Err: fmt.Errorf("empty record")}
	}
	return raw, nil
}
