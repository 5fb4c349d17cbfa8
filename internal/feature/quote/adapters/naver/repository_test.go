package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNaverQuote(t *testing.T) {
	t.Parallel()

	cfg := Config{BaseURL: "https://quotes.test", Timeout: 10 * time.Second}
	q := NewNaverQuote(cfg, &http.Client{})

	require.NotNil(t, q)
	assert.Equal(t, cfg.BaseURL, q.cfg.BaseURL)
}

func TestNaverQuote_Fetch_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/005930/basic", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"itemCode": "005930",
			"stockName": "삼성전자",
			"closePrice": "173,500",
			"previousClosePrice": "169,000"
		}`))
	}))
	defer server.Close()

	q := NewNaverQuote(Config{BaseURL: server.URL}, server.Client())

	quote, err := q.Fetch(context.Background(), "005930")

	require.NoError(t, err)
	assert.Equal(t, "삼성전자", quote.Name)
	assert.Equal(t, "005930", quote.Code)
	assert.Equal(t, int64(173500), quote.CurrentPrice)
	assert.Equal(t, int64(169000), quote.PreviousClose)
}

func TestNaverQuote_Fetch_UnknownCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "404 for an unlisted code", status: http.StatusNotFound, body: `{"errorCode":"404"}`},
		{name: "empty stock name in the payload", status: http.StatusOK, body: `{"itemCode":"999999","stockName":""}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			q := NewNaverQuote(Config{BaseURL: server.URL}, server.Client())

			quote, err := q.Fetch(context.Background(), "999999")

			require.NoError(t, err, "an unknown code is not a transport failure")
			assert.Empty(t, quote.Name, "the empty name is the unknown-code signal")
		})
	}
}

func TestNaverQuote_Fetch_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	q := NewNaverQuote(Config{BaseURL: server.URL}, server.Client())

	_, err := q.Fetch(context.Background(), "005930")
	assert.Error(t, err)
}

func TestNaverQuote_Fetch_BadPrice(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"stockName":"삼성전자","closePrice":"N/A","previousClosePrice":"169,000"}`))
	}))
	defer server.Close()

	q := NewNaverQuote(Config{BaseURL: server.URL}, server.Client())

	_, err := q.Fetch(context.Background(), "005930")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "close price")
}

func TestNaverQuote_Fetch_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	q := NewNaverQuote(Config{BaseURL: server.URL}, server.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := q.Fetch(ctx, "005930")
	assert.Error(t, err)
}
