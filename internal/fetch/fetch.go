// Package fetch retrieves meal-plan documents from the Seezeit site.
// Fetched documents are cached per (canteen, language) with a one-day
// freshness window; the plan only changes once a day anyway.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"mensa-ukon/internal/canteen"
	"mensa-ukon/internal/plan"
)

const (
	baseURLDE = "https://www.seezeit.com/essen/speiseplaene/%s/"
	// The english endpoint uses a completely different URL scheme.
	baseURLEN = "https://www.seezeit.com/en/food/menus/%s/"

	cacheTTL       = 24 * time.Hour
	requestTimeout = 15 * time.Second
)

// Error reports a failed document retrieval. The engine propagates it
// to the caller unchanged; retrying is this package's business.
type Error struct {
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Client fetches and caches plan documents. Safe for concurrent use;
// the cache is internally synchronized and entries are immutable once
// stored.
type Client struct {
	http        *resty.Client
	cache       *expirable.LRU[string, string]
	urlOverride string
}

// NewClient builds a Client with retry and a bounded TTL cache sized
// to one entry per registered canteen and language.
func NewClient() *Client {
	httpc := resty.New().
		SetTimeout(requestTimeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept-Encoding", "gzip, deflate")
	return &Client{
		http:  httpc,
		cache: expirable.NewLRU[string, string](canteen.Count()*len(plan.Languages), nil, cacheTTL),
	}
}

// SetBaseURL overrides both endpoint URL patterns. Used by tests to
// point the client at a fixture server.
func (c *Client) SetBaseURL(pattern string) {
	c.urlOverride = pattern
}

// Fetch returns the raw plan document for a canteen in the given
// language, from cache when fresh enough.
func (c *Client) Fetch(ctx context.Context, can canteen.Canteen, lang plan.Language) (string, error) {
	key := can.Key + "|" + string(lang)
	if body, ok := c.cache.Get(key); ok {
		slog.Debug("serving plan document from cache", "canteen", can.Key, "language", lang)
		return body, nil
	}

	url := c.planURL(can, lang)
	slog.Debug("fetching plan document", "url", url)
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &Error{URL: url, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		slog.Warn("non-200 status from plan endpoint", "url", url, "status", res.StatusCode())
		return "", &Error{URL: url, Status: res.StatusCode()}
	}

	body := res.String()
	c.cache.Add(key, body)
	return body, nil
}

func (c *Client) planURL(can canteen.Canteen, lang plan.Language) string {
	if c.urlOverride != "" {
		return fmt.Sprintf(c.urlOverride, can.Key)
	}
	if lang == plan.EN {
		// e.g. mensa-giessberg -> giessberg-canteen
		key := strings.TrimPrefix(can.Key, "mensa-") + "-canteen"
		return fmt.Sprintf(baseURLEN, key)
	}
	return fmt.Sprintf(baseURLDE, can.Key)
}
