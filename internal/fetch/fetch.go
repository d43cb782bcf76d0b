// Package fetch performs GET requests against JSON APIs.
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"emperror.dev/errors"
	"go.uber.org/zap"

	"github.com/keshon/server-buddy/internal/metrics"
	"github.com/keshon/server-buddy/pkg/ratelimit"
)

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// Fetcher performs one GET per call; it never retries.
type Fetcher struct {
	client  *http.Client
	limiter *ratelimit.AdaptiveLimiter
	metrics *metrics.Metrics
	log     *zap.SugaredLogger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLimiter makes every request wait on lim first and report its outcome.
func WithLimiter(lim *ratelimit.AdaptiveLimiter) Option {
	return func(f *Fetcher) { f.limiter = lim }
}

// WithMetrics counts requests per host and outcome.
func WithMetrics(m *metrics.Metrics) Option {
	return func(f *Fetcher) { f.metrics = m }
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// New creates a Fetcher whose requests time out after timeout.
func New(timeout time.Duration, log *zap.SugaredLogger, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GetJSON fetches rawURL and decodes the body into out. Failures are either
// *NetworkError or *DecodeError.
func (f *Fetcher) GetJSON(ctx context.Context, rawURL string, out interface{}) (err error) {
	defer func() { f.observe(rawURL, err) }()

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return &NetworkError{URL: rawURL, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &NetworkError{URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	f.log.Debugf("GET %s => %d (%v)", rawURL, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return &NetworkError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return &NetworkError{URL: rawURL, Err: errors.Wrap(err, "read body")}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{URL: rawURL, Err: err}
	}
	return nil
}

func (f *Fetcher) observe(rawURL string, err error) {
	if f.limiter != nil {
		f.limiter.Observe(err)
	}
	if f.metrics == nil {
		return
	}

	host := rawURL
	if u, perr := url.Parse(rawURL); perr == nil && u.Host != "" {
		host = u.Host
	}
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	f.metrics.APIRequests.WithLabelValues(host, outcome).Inc()
}
