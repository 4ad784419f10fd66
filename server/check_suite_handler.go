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

const (
	conclusionSuccess = "success"
	conclusionFailure = "failure"
)

func (s *Server) handleCheckSuiteEvent(ctx context.Context, event *github.CheckSuiteEvent) error {
	if event.CheckSuite == nil || event.Repo == nil {
		return errors.Wrap(errMalformedEvent, "check_suite event without suite or repository")
	}
	if event.GetAction() != "completed" {
		return nil
	}

	suite := event.GetCheckSuite()
	conclusion := suite.GetConclusion()
	if conclusion != conclusionSuccess && conclusion != conclusionFailure {
		return nil
	}

	repo := s.repositoryFor(event.GetRepo().GetOwner().GetLogin(), event.GetRepo().GetName())
	if repo == nil {
		return nil
	}

	numbers, err := s.checkSuitePullRequests(ctx, repo, suite)
	if err != nil {
		return err
	}

	mlog.Info("handle check suite event",
		mlog.String("conclusion", conclusion),
		mlog.String("head_sha", suite.GetHeadSHA()),
		mlog.Int("prs", len(numbers)))

	for _, number := range numbers {
		pr, _, err := s.GithubClient.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
		if err != nil {
			return errors.Wrapf(err, "unable to get pull request %s/%s#%d", repo.Owner, repo.Name, number)
		}

		mentions, err := s.pullRequestMentions(ctx, repo, pr)
		if err != nil {
			return err
		}

		if conclusion == conclusionFailure {
			err = s.regressMentions(ctx, repo, mentions)
		} else {
			err = s.progressMentions(ctx, repo, workflow.Resolved(mentions))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// checkSuitePullRequests returns the pull requests a suite ran for. Suites
// of pull requests from forks list none, so the head commit is looked up.
func (s *Server) checkSuitePullRequests(ctx context.Context, repo *Repository, suite *github.CheckSuite) ([]int, error) {
	var numbers []int
	for _, pr := range suite.PullRequests {
		numbers = append(numbers, pr.GetNumber())
	}
	if len(numbers) > 0 || suite.GetHeadSHA() == "" {
		return numbers, nil
	}

	prs, _, err := s.GithubClient.PullRequests.ListPullRequestsWithCommit(ctx, repo.Owner, repo.Name, suite.GetHeadSHA(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list pull requests for commit %s", suite.GetHeadSHA())
	}
	for _, pr := range prs {
		if pr.GetState() == "open" {
			numbers = append(numbers, pr.GetNumber())
		}
	}
	return numbers, nil
}
