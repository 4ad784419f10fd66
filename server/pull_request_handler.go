// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"strings"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

func (s *Server) handlePullRequestEvent(ctx context.Context, event *github.PullRequestEvent) error {
	if event.PullRequest == nil || event.Repo == nil {
		return errors.Wrap(errMalformedEvent, "pull_request event without pull request or repository")
	}

	repo := s.repositoryFor(event.GetRepo().GetOwner().GetLogin(), event.GetRepo().GetName())
	if repo == nil {
		return nil
	}

	pr := event.GetPullRequest()
	mlog.Info("handle pull request event",
		mlog.String("repoUrl", pr.GetHTMLURL()),
		mlog.String("Action", event.GetAction()),
		mlog.Int("PR number", pr.GetNumber()))

	switch event.GetAction() {
	case "opened", "edited", "synchronize", "reopened":
		return s.syncPullRequest(ctx, repo, pr)
	case "closed":
		return s.closePullRequest(ctx, repo, pr)
	}
	return nil
}

func (s *Server) handlePullRequestReviewEvent(ctx context.Context, event *github.PullRequestReviewEvent) error {
	if event.PullRequest == nil || event.Review == nil || event.Repo == nil {
		return errors.Wrap(errMalformedEvent, "pull_request_review event without pull request, review or repository")
	}

	if event.GetAction() != "submitted" || !strings.EqualFold(event.GetReview().GetState(), "changes_requested") {
		return nil
	}

	repo := s.repositoryFor(event.GetRepo().GetOwner().GetLogin(), event.GetRepo().GetName())
	if repo == nil {
		return nil
	}

	pr := event.GetPullRequest()
	mlog.Info("handle changes requested", mlog.Int("PR number", pr.GetNumber()))

	mentions, err := s.pullRequestMentions(ctx, repo, pr)
	if err != nil {
		return err
	}
	return s.regressMentions(ctx, repo, mentions)
}
