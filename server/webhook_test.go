// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrorToMattermost(t *testing.T) {
	var received []WebhookRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var payload WebhookRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received = append(received, payload)
	}))
	defer ts.Close()

	t.Run("nothing is sent without a webhook url", func(t *testing.T) {
		s, _ := setupTestServer(t)
		s.logErrorToMattermost("failed: %s", "boom")
		assert.Empty(t, received)
	})

	t.Run("message carries the footer", func(t *testing.T) {
		s, _ := setupTestServer(t)
		s.Config.MattermostWebhookURL = ts.URL
		s.Config.MattermostWebhookFooter = "boardsync staging"

		s.logErrorToMattermost("failed: %s", "boom")

		require.Len(t, received, 1)
		assert.Equal(t, "Boardsync", received[0].Username)
		assert.Equal(t, "failed: boom\n---\nboardsync staging", received[0].Text)
	})

	t.Run("failed event is reported", func(t *testing.T) {
		received = nil
		s, m := setupTestServer(t)
		s.Config.MattermostWebhookURL = ts.URL

		m.issues.EXPECT().
			ListLabelsByIssue(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 42, gomock.Any()).
			Return(nil, nil, errors.New("boom"))

		w := postEvent(s, "issues", issuesPayload("closed", 42))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		require.Len(t, received, 1)
		assert.Contains(t, received[0].Text, "`issues`")
	})
}

func TestSendToWebhookStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	err := sendToWebhook(context.Background(), ts.URL, &WebhookRequest{Text: "hi"})
	require.Error(t, err)
}
