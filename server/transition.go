// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-boardsync/model"
	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

type milestoneAction int

const (
	milestoneKeep milestoneAction = iota
	milestoneSet
	milestoneClear
)

// issueUpdate is a fully computed change to one issue. Nothing is sent to
// GitHub until every field is known.
type issueUpdate struct {
	number int
	// issueID is needed to put an issue on the board for the first time.
	issueID int64
	state   string

	current []string
	labels  []string

	milestone       milestoneAction
	milestoneNumber int

	// column is where the card must end up. Empty leaves the card alone.
	column string

	reason string
}

// planTransition computes the update moving an issue to target.
func (s *Server) planTransition(ctx context.Context, repo *Repository, number int, current []string, target workflow.Target) (*issueUpdate, error) {
	u := &issueUpdate{
		number:  number,
		current: current,
		labels:  s.labels.Transition(current, target),
		reason:  target.String(),
	}

	var milestones []workflow.Milestone
	if target.State == workflow.StateMilestone {
		u.milestone = milestoneSet
		u.milestoneNumber = target.Milestone

		var err error
		milestones, err = s.FetchMilestones(ctx, repo)
		if err != nil {
			return nil, err
		}
	}

	column, err := s.columns.Column(target, milestones)
	if err != nil {
		return nil, err
	}
	u.column = column

	return u, nil
}

// applyTransition moves an issue in the given GitHub state to target:
// labels first, then milestone, then its card.
func (s *Server) applyTransition(ctx context.Context, repo *Repository, number int, state string, target workflow.Target) error {
	current, err := s.FetchIssueLabels(ctx, repo, number)
	if err != nil {
		return err
	}

	u, err := s.planTransition(ctx, repo, number, current, target)
	if err != nil {
		return err
	}
	u.state = state
	return s.apply(ctx, repo, u)
}

// apply sends a computed update to GitHub and records the result.
func (s *Server) apply(ctx context.Context, repo *Repository, u *issueUpdate) error {
	logger := []mlog.Field{
		mlog.String("repo_owner", repo.Owner),
		mlog.String("repo_name", repo.Name),
		mlog.Int("issue", u.number),
		mlog.String("transition", u.reason),
	}

	if !workflow.Equal(u.current, u.labels) {
		if err := s.ApplyLabels(ctx, repo, u.number, u.labels); err != nil {
			return err
		}
	}

	switch u.milestone {
	case milestoneSet:
		if err := s.ApplyMilestone(ctx, repo, u.number, &u.milestoneNumber); err != nil {
			return err
		}
	case milestoneClear:
		if err := s.ApplyMilestone(ctx, repo, u.number, nil); err != nil {
			return err
		}
	}

	if u.column != "" {
		err := s.placeCard(ctx, repo, u.number, u.issueID, u.column)
		if errors.Is(err, workflow.ErrNotFound) {
			mlog.Warn("Board has no column for the transition", append(logger, mlog.Err(err))...)
		} else if err != nil {
			return err
		}
	}

	mlog.Info("Applied issue transition", logger...)
	if s.Metrics != nil {
		s.Metrics.IncreaseTransitions(u.reason)
	}

	s.saveIssueSnapshot(repo, u)
	return nil
}

// saveIssueSnapshot records what boardsync last wrote. A failure here is
// logged only since GitHub already holds the new state.
func (s *Server) saveIssueSnapshot(repo *Repository, u *issueUpdate) {
	previous, err := s.Store.Issue().Get(repo.Owner, repo.Name, u.number)
	if err != nil {
		mlog.Error("Unable to load issue snapshot", mlog.Int("issue", u.number), mlog.Err(err))
	}

	issue := &model.Issue{
		RepoOwner: repo.Owner,
		RepoName:  repo.Name,
		Number:    u.number,
		State:     u.state,
		Labels:    u.labels,
		UpdatedAt: time.Now().UTC(),
	}
	if issue.State == "" {
		issue.State = model.StateOpen
		if previous != nil {
			issue.State = previous.State
		}
	}

	switch u.milestone {
	case milestoneSet:
		n := int64(u.milestoneNumber)
		issue.MilestoneNumber = &n
	case milestoneKeep:
		if previous != nil {
			issue.MilestoneNumber = previous.MilestoneNumber
		}
	}

	if _, err := s.Store.Issue().Save(issue); err != nil {
		mlog.Error("Unable to save issue snapshot", mlog.Int("issue", u.number), mlog.Err(err))
	}
}

// progressTarget applies the forward-only rule for commit activity. An
// unresolved mention only starts work on an issue nobody picked up yet; a
// resolved mention moves any unfinished issue to awaiting pull request.
func progressTarget(current workflow.State, m workflow.Mention) (workflow.Target, bool) {
	if m.Resolved {
		switch current {
		case workflow.StateAwaitingPullRequest, workflow.StateFixed, workflow.StateComplete:
			return workflow.Target{}, false
		}
		return workflow.AwaitingPullRequest, true
	}

	switch current {
	case workflow.StateNone, workflow.StateTriage:
		return workflow.Working, true
	}
	return workflow.Target{}, false
}

// mentionedIssue loads a mentioned issue. It returns nil for numbers that
// are pull requests or do not exist.
func (s *Server) mentionedIssue(ctx context.Context, repo *Repository, number int) (*github.Issue, error) {
	issue, _, err := s.GithubClient.Issues.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		if isNotFound(err) {
			mlog.Debug("Mentioned issue does not exist", mlog.String("repo", repo.Name), mlog.Int("issue", number))
			return nil, nil
		}
		return nil, errors.Wrapf(err, "unable to get issue %s/%s#%d", repo.Owner, repo.Name, number)
	}
	if issue.IsPullRequest() {
		return nil, nil
	}
	return issue, nil
}

// progressMentions moves every mentioned open issue forward.
func (s *Server) progressMentions(ctx context.Context, repo *Repository, mentions []workflow.Mention) error {
	return forEachMention(mentions, func(m workflow.Mention) error {
		issue, err := s.mentionedIssue(ctx, repo, m.IssueNumber)
		if err != nil || issue == nil {
			return err
		}
		if issue.GetState() == model.StateClosed {
			return nil
		}

		current := labelNames(issue.Labels)
		target, ok := progressTarget(s.labels.Current(current), m)
		if !ok {
			return nil
		}

		u, err := s.planTransition(ctx, repo, m.IssueNumber, current, target)
		if err != nil {
			return err
		}
		u.state = model.StateOpen
		return s.apply(ctx, repo, u)
	})
}

// regressMentions sends resolved issues waiting on a pull request back to
// Working.
func (s *Server) regressMentions(ctx context.Context, repo *Repository, mentions []workflow.Mention) error {
	return forEachMention(workflow.Resolved(mentions), func(m workflow.Mention) error {
		issue, err := s.mentionedIssue(ctx, repo, m.IssueNumber)
		if err != nil || issue == nil {
			return err
		}

		current := labelNames(issue.Labels)
		if s.labels.Current(current) != workflow.StateAwaitingPullRequest {
			return nil
		}

		u, err := s.planTransition(ctx, repo, m.IssueNumber, current, workflow.Working)
		if err != nil {
			return err
		}
		u.state = issue.GetState()
		return s.apply(ctx, repo, u)
	})
}

// closeMentions resolves the issues a merged pull request fixes.
func (s *Server) closeMentions(ctx context.Context, repo *Repository, mentions []workflow.Mention) error {
	return forEachMention(workflow.Resolved(mentions), func(m workflow.Mention) error {
		issue, err := s.mentionedIssue(ctx, repo, m.IssueNumber)
		if err != nil || issue == nil {
			return err
		}
		return s.closeIssue(ctx, repo, m.IssueNumber, labelNames(issue.Labels))
	})
}

// closeIssue labels an issue Fixed or Complete. Its card is left where it
// is.
func (s *Server) closeIssue(ctx context.Context, repo *Repository, number int, current []string) error {
	hasBug := s.labels.HasBug(current)
	reason := workflow.StateComplete
	if hasBug {
		reason = workflow.StateFixed
	}
	return s.apply(ctx, repo, &issueUpdate{
		number:  number,
		state:   model.StateClosed,
		current: current,
		labels:  s.labels.CloseResolution(current, hasBug),
		reason:  reason.String(),
	})
}

// forEachMention runs f for every mention and keeps going after a failure.
// The first error is returned.
func forEachMention(mentions []workflow.Mention, f func(workflow.Mention) error) error {
	var firstErr error
	for _, m := range mentions {
		if err := f(m); err != nil {
			mlog.Error("Unable to update mentioned issue", mlog.Int("issue", m.IssueNumber), mlog.Err(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
