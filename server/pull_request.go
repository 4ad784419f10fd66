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
	"golang.org/x/sync/errgroup"
)

// scanTexts scans every text concurrently and merges the mentions in the
// order the texts were given.
func scanTexts(ctx context.Context, texts []string) ([]workflow.Mention, error) {
	results := make([][]workflow.Mention, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = workflow.Scan(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []workflow.Mention
	for _, r := range results {
		all = append(all, r...)
	}
	return workflow.Merge(all), nil
}

// pullRequestMentions collects the mentions of the author's part of the
// body followed by every commit message.
func (s *Server) pullRequestMentions(ctx context.Context, repo *Repository, pr *github.PullRequest) ([]workflow.Mention, error) {
	messages, err := s.listCommitMessages(ctx, repo, pr.GetNumber())
	if err != nil {
		return nil, err
	}

	texts := append([]string{stripMentionSection(pr.GetBody())}, messages...)
	return scanTexts(ctx, texts)
}

// updatePullRequestBody rewrites the generated section and only edits the
// pull request when the text changed.
func (s *Server) updatePullRequestBody(ctx context.Context, repo *Repository, pr *github.PullRequest, mentions []workflow.Mention) error {
	body := withMentionSection(pr.GetBody(), mentions)
	if body == pr.GetBody() {
		return nil
	}

	edited, _, err := s.GithubClient.PullRequests.Edit(ctx, repo.Owner, repo.Name, pr.GetNumber(), &github.PullRequest{
		Body: github.String(body),
	})
	if err != nil {
		return errors.Wrapf(err, "unable to update body of %s/%s#%d", repo.Owner, repo.Name, pr.GetNumber())
	}
	if edited != nil {
		pr.Body = edited.Body
	} else {
		pr.Body = github.String(body)
	}
	return nil
}

// syncPullRequest moves the issues an open pull request mentions forward,
// refreshes its body and records the mentions.
func (s *Server) syncPullRequest(ctx context.Context, repo *Repository, pr *github.PullRequest) error {
	mentions, err := s.pullRequestMentions(ctx, repo, pr)
	if err != nil {
		return err
	}

	progressErr := s.progressMentions(ctx, repo, mentions)

	if err := s.updatePullRequestBody(ctx, repo, pr, mentions); err != nil {
		return err
	}

	s.savePullRequestSnapshot(repo, pr, mentions)
	return progressErr
}

// closePullRequest resolves or reopens the work behind a closed pull request.
func (s *Server) closePullRequest(ctx context.Context, repo *Repository, pr *github.PullRequest) error {
	mentions, err := s.pullRequestMentions(ctx, repo, pr)
	if err != nil {
		return err
	}

	if pr.GetMerged() {
		err = s.closeMentions(ctx, repo, mentions)
	} else {
		err = s.regressMentions(ctx, repo, mentions)
	}

	s.savePullRequestSnapshot(repo, pr, mentions)
	return err
}

func (s *Server) savePullRequestSnapshot(repo *Repository, pr *github.PullRequest, mentions []workflow.Mention) {
	updatedAt := pr.GetUpdatedAt()
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	snapshot := &model.PullRequest{
		RepoOwner: repo.Owner,
		RepoName:  repo.Name,
		Number:    pr.GetNumber(),
		Username:  pr.GetUser().GetLogin(),
		Ref:       pr.GetHead().GetRef(),
		State:     pr.GetState(),
		Merged:    pr.Merged,
		Mentions:  mentions,
		UpdatedAt: updatedAt.UTC(),
	}
	if _, err := s.Store.PullRequest().Save(snapshot); err != nil {
		mlog.Error("Unable to save pull request snapshot", mlog.Int("pr", pr.GetNumber()), mlog.Err(err))
	}
}
