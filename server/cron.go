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

// SyncBoard catches up with deliveries that never arrived. Issues without a
// workflow label are triaged and the pull requests still open in the store
// are scanned again. Only one instance runs it at a time.
func (s *Server) SyncBoard() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultCronTaskTimeout*time.Second)
	defer cancel()

	start := time.Now()
	if err := s.syncBoard(ctx); err != nil {
		mlog.Error("Board sync failed", mlog.Err(err))
		if s.Metrics != nil {
			s.Metrics.IncreaseCronTaskErrors(syncBoardTaskName)
		}
	}
	if s.Metrics != nil {
		s.Metrics.ObserveCronTaskDuration(syncBoardTaskName, time.Since(start).Seconds())
	}
}

func (s *Server) syncBoard(ctx context.Context) error {
	mutex := s.Store.Mutex(syncBoardTaskName)
	if err := mutex.Lock(ctx); err != nil {
		return errors.Wrap(err, "unable to acquire board sync lock")
	}
	defer func() {
		if err := mutex.Unlock(); err != nil {
			mlog.Warn("Unable to release board sync lock", mlog.Err(err))
		}
	}()

	if s.CheckLimitRateAndAbortRequest(ctx) {
		return nil
	}

	var firstErr error
	for _, repo := range s.Config.Repositories {
		if err := s.triageUnlabeledIssues(ctx, repo); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := s.rescanOpenPullRequests(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func (s *Server) triageUnlabeledIssues(ctx context.Context, repo *Repository) error {
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	for {
		issues, resp, err := s.GithubClient.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return errors.Wrapf(err, "unable to list issues of %s/%s", repo.Owner, repo.Name)
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			current := labelNames(issue.Labels)
			if s.labels.Current(current) != workflow.StateNone {
				continue
			}

			u, err := s.planTransition(ctx, repo, issue.GetNumber(), current, workflow.Triage)
			if err != nil {
				return err
			}
			u.issueID = issue.GetID()
			u.state = model.StateOpen
			if err := s.apply(ctx, repo, u); err != nil {
				return err
			}
		}

		if resp.NextPage == 0 {
			return nil
		}
		opts.Page = resp.NextPage
	}
}

func (s *Server) rescanOpenPullRequests(ctx context.Context) error {
	prs, err := s.Store.PullRequest().ListOpen()
	if err != nil {
		return err
	}

	for _, stored := range prs {
		repo, ok := s.Config.GetRepository(stored.RepoOwner, stored.RepoName)
		if !ok {
			continue
		}

		pr, _, err := s.GithubClient.PullRequests.Get(ctx, repo.Owner, repo.Name, stored.Number)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return errors.Wrapf(err, "unable to get pull request %s/%s#%d", repo.Owner, repo.Name, stored.Number)
		}

		if pr.GetState() == model.StateClosed {
			err = s.closePullRequest(ctx, repo, pr)
		} else {
			err = s.syncPullRequest(ctx, repo, pr)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
