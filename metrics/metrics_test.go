// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	prometheusModels "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func histogram(t *testing.T, vec *prometheus.HistogramVec, labels prometheus.Labels) *prometheusModels.Histogram {
	t.Helper()
	m := &prometheusModels.Metric{}
	data, err := vec.GetMetricWith(labels)
	require.NoError(t, err)
	require.NoError(t, data.(prometheus.Histogram).Write(m))
	return m.Histogram
}

func TestMetrics(t *testing.T) {
	provider := NewPrometheusProvider()

	t.Run("Should store metrics for requests duration", func(t *testing.T) {
		labels := prometheus.Labels{"handler": "handler", "method": "method", "status_code": "200"}
		require.Equal(t, uint64(0), histogram(t, provider.httpRequestsDuration, labels).GetSampleCount())
		provider.ObserveHTTPRequestDuration("handler", "method", "200", 1)
		h := histogram(t, provider.httpRequestsDuration, labels)
		require.Equal(t, uint64(1), h.GetSampleCount())
		require.InDelta(t, 1, h.GetSampleSum(), 0.001)
	})

	t.Run("Should store metrics for github requests duration", func(t *testing.T) {
		labels := prometheus.Labels{"handler": "handler", "method": "method", "status_code": "200"}
		require.Equal(t, uint64(0), histogram(t, provider.githubRequests, labels).GetSampleCount())
		provider.ObserveGithubRequestDuration("handler", "method", "200", 1)
		h := histogram(t, provider.githubRequests, labels)
		require.Equal(t, uint64(1), h.GetSampleCount())
		require.InDelta(t, 1, h.GetSampleSum(), 0.001)
	})

	t.Run("Should store metrics for cron tasks duration", func(t *testing.T) {
		labels := prometheus.Labels{"name": "sync-board"}
		require.Equal(t, uint64(0), histogram(t, provider.cronTasksDuration, labels).GetSampleCount())
		provider.ObserveCronTaskDuration("sync-board", 1)
		require.Equal(t, uint64(1), histogram(t, provider.cronTasksDuration, labels).GetSampleCount())
	})

	counters := []struct {
		name   string
		vec    *prometheus.CounterVec
		inc    func()
		labels []string
	}{
		{"webhook requests", provider.webhookEvents, func() { provider.IncreaseWebhookRequest("push") }, []string{"push"}},
		{"webhook errors", provider.webhookErrors, func() { provider.IncreaseWebhookErrors("push") }, []string{"push"}},
		{"github cache hits", provider.githubCacheHits, func() { provider.IncreaseGithubCacheHits("GET", "test") }, []string{"GET", "test"}},
		{"github cache misses", provider.githubCacheMisses, func() { provider.IncreaseGithubCacheMisses("GET", "test") }, []string{"GET", "test"}},
		{"cron task errors", provider.cronTasksErrors, func() { provider.IncreaseCronTaskErrors("sync-board") }, []string{"sync-board"}},
		{"transitions", provider.transitions, func() { provider.IncreaseTransitions("AwaitingPR") }, []string{"AwaitingPR"}},
	}
	for _, tc := range counters {
		t.Run("Should count "+tc.name, func(t *testing.T) {
			require.Equal(t, float64(0), counterValue(t, tc.vec, tc.labels...))
			tc.inc()
			require.Equal(t, float64(1), counterValue(t, tc.vec, tc.labels...))
		})
	}
}

func getBody(t *testing.T, url string) (int, string) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func localURL(t *testing.T, server *Server) string {
	_, port, err := net.SplitHostPort(server.Addr())
	require.NoError(t, err)
	return "http://localhost:" + port
}

func TestServer(t *testing.T) {
	provider := NewPrometheusProvider()
	provider.IncreaseTransitions("Working")

	t.Run("serves the registry and lists it on the index", func(t *testing.T) {
		server := NewServer(ServerOptions{Port: "0"}, provider.Handler())
		require.NoError(t, server.Start())
		defer server.Stop()
		base := localURL(t, server)

		code, body := getBody(t, base+"/metrics")
		require.Equal(t, http.StatusOK, code)
		require.Contains(t, body, `boardsync_workflow_transitions_total{state="Working"} 1`)

		_, index := getBody(t, base+"/")
		require.Contains(t, index, "/metrics")
		require.NotContains(t, index, "/debug/pprof/")

		code, _ = getBody(t, base+"/debug/pprof/heap")
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run("profiling is mounted on request", func(t *testing.T) {
		server := NewServer(ServerOptions{Port: "0", EnableProfiling: true}, provider.Handler())
		require.NoError(t, server.Start())
		defer server.Stop()
		base := localURL(t, server)

		_, index := getBody(t, base+"/")
		require.Contains(t, index, "/debug/pprof/cmdline")

		code, _ := getBody(t, base+"/debug/pprof/heap?debug=1")
		require.Equal(t, http.StatusOK, code)
	})

	t.Run("port in use is an error", func(t *testing.T) {
		first := NewServer(ServerOptions{Port: "0"})
		require.NoError(t, first.Start())
		defer first.Stop()

		_, port, err := net.SplitHostPort(first.Addr())
		require.NoError(t, err)
		require.Error(t, NewServer(ServerOptions{Port: port}).Start())
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		NewServer(ServerOptions{Port: "0"}).Stop()
	})
}
