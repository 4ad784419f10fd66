// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	prometheusModels "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestHandlerLabel(t *testing.T) {
	for path, expected := range map[string]string{
		"/repos/owner/repo/issues/12/labels": "/repos/owner/repo/issues/:id/labels",
		"/projects/columns/cards/5/moves":    "/projects/columns/cards/:id/moves",
		"/projects/1/columns":                "/projects/:id/columns",
		"/repos/owner/repo/milestones":       "/repos/owner/repo/milestones",
		"/projects/columns/1/2":              "/projects/columns/:id/:id",
	} {
		require.Equal(t, expected, handlerLabel(path), path)
	}
}

func TestTransport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cached") != "" {
			w.Header().Set("X-From-Cache", "1")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	provider := NewPrometheusProvider()
	client := NewTransport(http.DefaultTransport, provider).Client()

	resp, err := client.Get(ts.URL + "/repos/o/r/issues/3")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Get(ts.URL + "/repos/o/r/issues/4?cached=1")
	require.NoError(t, err)
	resp.Body.Close()

	handler := "/repos/o/r/issues/:id"
	require.Equal(t, float64(1), counterValue(t, provider.githubCacheMisses, "GET", handler))
	require.Equal(t, float64(1), counterValue(t, provider.githubCacheHits, "GET", handler))
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	m := &prometheusModels.Metric{}
	data, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	require.NoError(t, data.Write(m))
	return m.Counter.GetValue()
}
