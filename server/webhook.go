// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const mattermostWebhookTimeout = 10 * time.Second

// WebhookRequest is the payload of a Mattermost incoming webhook.
type WebhookRequest struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

func sendToWebhook(ctx context.Context, webhookURL string, payload *WebhookRequest) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payloadBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	r, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(ioutil.Discard, r.Body)
		r.Body.Close()
	}()

	if r.StatusCode != http.StatusOK {
		return errors.Errorf("received non-200 status code posting to mattermost: %v", r.StatusCode)
	}

	return nil
}

// logErrorToMattermost posts a failure to the configured Mattermost channel.
func (s *Server) logErrorToMattermost(msg string, args ...interface{}) {
	if s.Config.MattermostWebhookURL == "" {
		return
	}

	text := fmt.Sprintf(msg, args...)
	if s.Config.MattermostWebhookFooter != "" {
		text += "\n---\n" + s.Config.MattermostWebhookFooter
	}
	mlog.Debug("Sending Mattermost message", mlog.String("message", text))

	ctx, cancel := context.WithTimeout(context.Background(), mattermostWebhookTimeout)
	defer cancel()

	if err := sendToWebhook(ctx, s.Config.MattermostWebhookURL, &WebhookRequest{Username: "Boardsync", Text: text}); err != nil {
		mlog.Error("Unable to post to Mattermost webhook", mlog.Err(err))
	}
}
