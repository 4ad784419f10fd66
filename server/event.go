// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const (
	eventPing              = "ping"
	eventIssues            = "issues"
	eventProjectCard       = "project_card"
	eventPush              = "push"
	eventPullRequest       = "pull_request"
	eventPullRequestReview = "pull_request_review"
	eventCheckSuite        = "check_suite"
)

var supportedEvents = map[string]bool{
	eventIssues:            true,
	eventProjectCard:       true,
	eventPush:              true,
	eventPullRequest:       true,
	eventPullRequestReview: true,
	eventCheckSuite:        true,
}

// errMalformedEvent marks payloads missing a part the handler needs.
var errMalformedEvent = errors.New("malformed event payload")

func (s *Server) githubEvent(w http.ResponseWriter, r *http.Request) {
	eventType := github.WebHookType(r)
	if eventType == "" {
		http.Error(w, "missing X-GitHub-Event header", http.StatusBadRequest)
		return
	}
	if s.Metrics != nil {
		s.Metrics.IncreaseWebhookRequest(eventType)
	}

	if eventType == eventPing {
		w.WriteHeader(http.StatusOK)
		return
	}
	if !supportedEvents[eventType] {
		mlog.Debug("Ignoring unsupported event", mlog.String("event", eventType))
		w.WriteHeader(http.StatusOK)
		return
	}

	payload, err := s.readPayload(r)
	if err != nil {
		mlog.Error("Unable to read webhook body", mlog.String("event", eventType), mlog.Err(err))
		http.Error(w, "unable to read body", http.StatusBadRequest)
		return
	}

	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		mlog.Error("Unable to parse webhook payload", mlog.String("event", eventType), mlog.Err(err))
		http.Error(w, "unable to parse payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRequestTimeout*time.Second)
	defer cancel()

	if s.CheckLimitRateAndAbortRequest(ctx) {
		http.Error(w, "github rate limit reserve reached", http.StatusTooManyRequests)
		return
	}

	start := time.Now()
	err = s.handleEvent(ctx, event)
	mlog.Debug("Handled event", mlog.String("event", eventType), mlog.Any("elapsed", time.Since(start)))

	s.writeEventResult(w, eventType, err)
}

// readPayload returns the request body. With a webhook secret configured the
// signature header must match it.
func (s *Server) readPayload(r *http.Request) ([]byte, error) {
	if s.Config.GithubWebhookSecret == "" {
		return ioutil.ReadAll(r.Body)
	}
	return github.ValidatePayload(r, []byte(s.Config.GithubWebhookSecret))
}

// sentByBot reports whether GitHub delivered an event caused by boardsync's
// own account, such as the labeled event following a label replacement.
func (s *Server) sentByBot(event interface{}) bool {
	if s.Config.Username == "" {
		return false
	}
	e, ok := event.(interface{ GetSender() *github.User })
	return ok && strings.EqualFold(e.GetSender().GetLogin(), s.Config.Username)
}

func (s *Server) handleEvent(ctx context.Context, event interface{}) error {
	if s.sentByBot(event) {
		mlog.Debug("Ignoring event sent by boardsync", mlog.String("username", s.Config.Username))
		return nil
	}

	switch e := event.(type) {
	case *github.IssuesEvent:
		return s.handleIssuesEvent(ctx, e)
	case *github.ProjectCardEvent:
		return s.handleProjectCardEvent(ctx, e)
	case *github.PushEvent:
		return s.handlePushEvent(ctx, e)
	case *github.PullRequestEvent:
		return s.handlePullRequestEvent(ctx, e)
	case *github.PullRequestReviewEvent:
		return s.handlePullRequestReviewEvent(ctx, e)
	case *github.CheckSuiteEvent:
		return s.handleCheckSuiteEvent(ctx, e)
	}
	return nil
}

func (s *Server) writeEventResult(w http.ResponseWriter, eventType string, err error) {
	if err == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if s.Metrics != nil {
		s.Metrics.IncreaseWebhookErrors(eventType)
	}

	switch {
	case errors.Is(err, errMalformedEvent):
		mlog.Warn("Rejected malformed event", mlog.String("event", eventType), mlog.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, workflow.ErrNotFound):
		mlog.Warn("Unable to route event", mlog.String("event", eventType), mlog.Err(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		mlog.Error("Failed to handle event", mlog.String("event", eventType), mlog.Err(err))
		s.logErrorToMattermost("Failed to handle `%s` event: %s", eventType, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// repositoryFor returns the configured repository, or nil when deliveries
// from it are not handled.
func (s *Server) repositoryFor(owner, name string) *Repository {
	repo, ok := s.Config.GetRepository(owner, name)
	if !ok {
		mlog.Debug("Ignoring event for unconfigured repository", mlog.String("repo_owner", owner), mlog.String("repo_name", name))
		return nil
	}
	return repo
}
