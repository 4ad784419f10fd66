// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-boardsync/model"
	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

func (s *Server) handleIssuesEvent(ctx context.Context, event *github.IssuesEvent) error {
	if event.Issue == nil || event.Repo == nil {
		return errors.Wrap(errMalformedEvent, "issues event without issue or repository")
	}

	repo := s.repositoryFor(event.GetRepo().GetOwner().GetLogin(), event.GetRepo().GetName())
	if repo == nil || event.Issue.IsPullRequest() {
		return nil
	}

	issue := event.GetIssue()
	mlog.Info("handle issue event",
		mlog.String("repoUrl", issue.GetHTMLURL()),
		mlog.String("Action", event.GetAction()),
		mlog.Int("Issue number", issue.GetNumber()))

	switch event.GetAction() {
	case "opened":
		return s.triageIssue(ctx, repo, issue)
	case "reopened":
		return s.applyTransition(ctx, repo, issue.GetNumber(), model.StateOpen, workflow.Triage)
	case "closed":
		current, err := s.FetchIssueLabels(ctx, repo, issue.GetNumber())
		if err != nil {
			return err
		}
		return s.closeIssue(ctx, repo, issue.GetNumber(), current)
	case "labeled":
		return s.followLabel(ctx, repo, issue, event.GetLabel().GetName())
	}
	return nil
}

// triageIssue labels a new issue Triage and puts it on the board.
func (s *Server) triageIssue(ctx context.Context, repo *Repository, issue *github.Issue) error {
	current, err := s.FetchIssueLabels(ctx, repo, issue.GetNumber())
	if err != nil {
		return err
	}

	u, err := s.planTransition(ctx, repo, issue.GetNumber(), current, workflow.Triage)
	if err != nil {
		return err
	}
	u.issueID = issue.GetID()
	u.state = model.StateOpen
	return s.apply(ctx, repo, u)
}

// followLabel keeps a single workflow label on the issue when one is added
// by hand, and moves the card to the matching column.
func (s *Server) followLabel(ctx context.Context, repo *Repository, issue *github.Issue, label string) error {
	state := s.labels.StateOf(label)
	if state == workflow.StateNone {
		return nil
	}

	current, err := s.FetchIssueLabels(ctx, repo, issue.GetNumber())
	if err != nil {
		return err
	}

	target := workflow.Target{State: state}
	u := &issueUpdate{
		number:  issue.GetNumber(),
		state:   issue.GetState(),
		current: current,
		labels:  s.labels.Transition(current, target),
		reason:  target.String(),
	}

	// Closed states have no column.
	if column, err := s.columns.Column(target, nil); err == nil {
		u.column = column
	}

	return s.apply(ctx, repo, u)
}
