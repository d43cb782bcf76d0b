package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := New()
	m.Commands.WithLabelValues("dog", OutcomeOK).Inc()
	m.Commands.WithLabelValues("dog", OutcomeOK).Inc()
	m.APIRequests.WithLabelValues("api.thecatapi.com", OutcomeError).Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands.WithLabelValues("dog", OutcomeOK)))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `server_buddy_commands_total{command="dog",outcome="ok"} 2`)
	assert.Contains(t, string(body), `server_buddy_api_requests_total{host="api.thecatapi.com",outcome="error"} 1`)
}
