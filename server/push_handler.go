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

const branchRefPrefix = "refs/heads/"

func (s *Server) handlePushEvent(ctx context.Context, event *github.PushEvent) error {
	if event.Repo == nil {
		return errors.Wrap(errMalformedEvent, "push event without repository")
	}

	owner := event.GetRepo().GetOwner().GetLogin()
	if owner == "" {
		owner = event.GetRepo().GetOwner().GetName()
	}
	repo := s.repositoryFor(owner, event.GetRepo().GetName())
	if repo == nil {
		return nil
	}

	messages := make([]string, 0, len(event.Commits))
	for _, commit := range event.Commits {
		messages = append(messages, commit.GetMessage())
	}

	mentions, err := scanTexts(ctx, messages)
	if err != nil {
		return err
	}

	mlog.Info("handle push event",
		mlog.String("ref", event.GetRef()),
		mlog.Int("commits", len(messages)),
		mlog.Int("mentions", len(mentions)))

	progressErr := s.progressMentions(ctx, repo, mentions)

	if !strings.HasPrefix(event.GetRef(), branchRefPrefix) {
		return progressErr
	}
	branch := strings.TrimPrefix(event.GetRef(), branchRefPrefix)

	prs, err := s.ListOpenPullRequestsByUser(ctx, repo, event.GetSender().GetLogin())
	if err != nil {
		return err
	}
	for _, pr := range prs {
		if pr.GetHead().GetRef() != branch {
			continue
		}
		if err := s.syncPullRequest(ctx, repo, pr); err != nil {
			return err
		}
	}

	return progressErr
}
