// Package naver fetches live stock quotes from the Naver mobile finance API.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"stockcalendar/internal/feature/quote/adapters/naver/dto"
	"stockcalendar/internal/feature/quote/domain/entity"
	"stockcalendar/internal/feature/snapshot/usecase"
)

// NaverQuote implements the snapshot usecase's QuoteFetcher against the
// Naver mobile stock basic endpoint.
type NaverQuote struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that NaverQuote implements QuoteFetcher.
var _ usecase.QuoteFetcher = (*NaverQuote)(nil)

// NewNaverQuote creates a new NaverQuote with the given config and HTTP client.
func NewNaverQuote(cfg Config, client *http.Client) *NaverQuote {
	return &NaverQuote{cfg: cfg, client: client}
}

// Fetch retrieves the live quote for a stock code. An unknown code yields a
// Quote with an empty Name and no error; network and decode failures are
// returned as errors.
func (n *NaverQuote) Fetch(ctx context.Context, code string) (entity.Quote, error) {
	u := fmt.Sprintf("%s/api/stock/%s/basic", n.cfg.BaseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Quote{}, err
	}

	res, err := n.client.Do(req)
	if err != nil {
		return entity.Quote{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// The endpoint answers 404 for codes it does not list. That is the
	// "unknown code" signal, not a transport failure.
	if res.StatusCode == http.StatusNotFound {
		return entity.Quote{Code: code}, nil
	}
	if res.StatusCode >= 400 {
		return entity.Quote{}, fmt.Errorf("naver quote http %d", res.StatusCode)
	}

	var body dto.BasicResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Quote{}, err
	}
	if body.StockName == "" {
		return entity.Quote{Code: code}, nil
	}

	current, err := parsePrice(body.ClosePrice)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("parse close price %q: %w", body.ClosePrice, err)
	}
	previous, err := parsePrice(body.PreviousClosePrice)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("parse previous close %q: %w", body.PreviousClosePrice, err)
	}

	return entity.Quote{
		Code:          code,
		Name:          body.StockName,
		CurrentPrice:  current,
		PreviousClose: previous,
	}, nil
}

// parsePrice converts a comma-grouped won amount ("173,500") to an integer.
func parsePrice(s string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
}
