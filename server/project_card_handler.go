// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

func (s *Server) handleProjectCardEvent(ctx context.Context, event *github.ProjectCardEvent) error {
	switch event.GetAction() {
	case "moved", "created":
	default:
		return nil
	}

	card := event.GetProjectCard()
	if card == nil {
		return errors.Wrap(errMalformedEvent, "project_card event without card")
	}
	if card.GetContentURL() == "" {
		// note cards carry no issue
		return nil
	}

	owner, name, number, err := parseIssueURL(card.GetContentURL())
	if err != nil {
		return errors.Wrap(errMalformedEvent, err.Error())
	}
	repo := s.repositoryFor(owner, name)
	if repo == nil {
		return nil
	}

	column, _, err := s.GithubClient.Projects.GetProjectColumn(ctx, card.GetColumnID())
	if err != nil {
		return errors.Wrapf(err, "unable to get column %d", card.GetColumnID())
	}

	issue, _, err := s.GithubClient.Issues.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return errors.Wrapf(err, "unable to get issue %s/%s#%d", repo.Owner, repo.Name, number)
	}

	mlog.Info("handle project card event",
		mlog.String("Action", event.GetAction()),
		mlog.String("column", column.GetName()),
		mlog.Int("Issue number", number),
		mlog.String("state", issue.GetState()))

	return s.routeCard(ctx, repo, number, issue.GetState(), column.GetName())
}

// routeCard brings the labels and milestone of an issue in line with the
// column its card was put in.
func (s *Server) routeCard(ctx context.Context, repo *Repository, number int, state, column string) error {
	var milestones []workflow.Milestone
	if !s.columns.IsFixed(column) {
		var err error
		milestones, err = s.FetchMilestones(ctx, repo)
		if err != nil {
			return err
		}
	}

	target, err := s.columns.Route(column, milestones)
	if err != nil {
		return err
	}

	current, err := s.FetchIssueLabels(ctx, repo, number)
	if err != nil {
		return err
	}

	u := &issueUpdate{
		number:  number,
		state:   state,
		current: current,
		labels:  s.labels.Transition(current, target),
		reason:  target.String(),
	}
	switch target.State {
	case workflow.StateTriage:
		u.milestone = milestoneClear
	case workflow.StateMilestone:
		u.milestone = milestoneSet
		u.milestoneNumber = target.Milestone
	}

	return s.apply(ctx, repo, u)
}
