// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"
)

// numericSegment matches issue, card and column ids in GitHub API paths.
var numericSegment = regexp.MustCompile(`/[0-9]+(/|$)`)

// Transport records duration and cache usage of every GitHub API call.
type Transport struct {
	Base    http.RoundTripper
	metrics Provider
}

func NewTransport(base http.RoundTripper, metrics Provider) *Transport {
	return &Transport{base, metrics}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.Base.RoundTrip(req)
	elapsed := float64(time.Since(start)) / float64(time.Second)
	// rate limited before reaching the wire
	if resp == nil {
		return resp, err
	}

	handler := handlerLabel(req.URL.Path)
	t.metrics.ObserveGithubRequestDuration(handler, req.Method, strconv.Itoa(resp.StatusCode), elapsed)

	if resp.Header.Get("X-From-Cache") == "1" {
		t.metrics.IncreaseGithubCacheHits(req.Method, handler)
	} else {
		t.metrics.IncreaseGithubCacheMisses(req.Method, handler)
	}

	return resp, err
}

func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// handlerLabel collapses ids so that the label set stays bounded.
func handlerLabel(path string) string {
	for numericSegment.MatchString(path) {
		path = numericSegment.ReplaceAllString(path, "/:id$1")
	}
	return path
}
