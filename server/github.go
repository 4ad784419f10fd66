// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const perPage = 100

// FetchIssueLabels returns the label names currently on an issue.
func (s *Server) FetchIssueLabels(ctx context.Context, repo *Repository, number int) ([]string, error) {
	opts := &github.ListOptions{PerPage: perPage}
	var names []string
	for {
		labels, resp, err := s.GithubClient.Issues.ListLabelsByIssue(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list labels of %s/%s#%d", repo.Owner, repo.Name, number)
		}
		for _, label := range labels {
			names = append(names, label.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}

// FetchMilestones returns every milestone of the repository, open or closed.
func (s *Server) FetchMilestones(ctx context.Context, repo *Repository) ([]workflow.Milestone, error) {
	opts := &github.MilestoneListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	var milestones []workflow.Milestone
	for {
		page, resp, err := s.GithubClient.Issues.ListMilestones(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list milestones of %s/%s", repo.Owner, repo.Name)
		}
		for _, m := range page {
			milestones = append(milestones, workflow.Milestone{Number: m.GetNumber(), Title: m.GetTitle()})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return milestones, nil
}

// ApplyLabels replaces the whole label set of an issue.
func (s *Server) ApplyLabels(ctx context.Context, repo *Repository, number int, labels []string) error {
	if labels == nil {
		labels = []string{}
	}
	if _, _, err := s.GithubClient.Issues.ReplaceLabelsForIssue(ctx, repo.Owner, repo.Name, number, labels); err != nil {
		return errors.Wrapf(err, "unable to replace labels of %s/%s#%d", repo.Owner, repo.Name, number)
	}
	return nil
}

// ApplyMilestone sets the milestone of an issue, or removes it when
// milestone is nil.
func (s *Server) ApplyMilestone(ctx context.Context, repo *Repository, number int, milestone *int) error {
	var err error
	if milestone == nil {
		_, err = s.GithubClient.Milestones.RemoveMilestone(ctx, repo.Owner, repo.Name, number)
	} else {
		_, _, err = s.GithubClient.Issues.Edit(ctx, repo.Owner, repo.Name, number, &github.IssueRequest{Milestone: milestone})
	}
	if err != nil {
		return errors.Wrapf(err, "unable to update milestone of %s/%s#%d", repo.Owner, repo.Name, number)
	}
	return nil
}

// MoveCard puts a card at the top of a column.
func (s *Server) MoveCard(ctx context.Context, cardID, columnID int64) error {
	if _, err := s.GithubClient.Projects.MoveProjectCard(ctx, cardID, &github.ProjectCardMoveOptions{
		Position: "top",
		ColumnID: columnID,
	}); err != nil {
		return errors.Wrapf(err, "unable to move card %d to column %d", cardID, columnID)
	}
	return nil
}

// ListOpenPullRequestsByUser returns the open pull requests authored by user.
func (s *Server) ListOpenPullRequestsByUser(ctx context.Context, repo *Repository, user string) ([]*github.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	var prs []*github.PullRequest
	for {
		page, resp, err := s.GithubClient.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list pull requests of %s/%s", repo.Owner, repo.Name)
		}
		for _, pr := range page {
			if strings.EqualFold(pr.GetUser().GetLogin(), user) {
				prs = append(prs, pr)
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return prs, nil
}

func (s *Server) listCommitMessages(ctx context.Context, repo *Repository, number int) ([]string, error) {
	opts := &github.ListOptions{PerPage: perPage}
	var messages []string
	for {
		commits, resp, err := s.GithubClient.PullRequests.ListCommits(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list commits of %s/%s#%d", repo.Owner, repo.Name, number)
		}
		for _, commit := range commits {
			messages = append(messages, commit.GetCommit().GetMessage())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return messages, nil
}

func (s *Server) projectColumns(ctx context.Context, repo *Repository) ([]*github.ProjectColumn, error) {
	opts := &github.ListOptions{PerPage: perPage}
	var columns []*github.ProjectColumn
	for {
		page, resp, err := s.GithubClient.Projects.ListProjectColumns(ctx, repo.ProjectID, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list columns of project %d", repo.ProjectID)
		}
		columns = append(columns, page...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return columns, nil
}

func columnIDByName(columns []*github.ProjectColumn, name string) (int64, bool) {
	for _, column := range columns {
		if column.GetName() == name {
			return column.GetID(), true
		}
	}
	return 0, false
}

// findIssueCard looks for the card of an issue in every column of the
// board. It returns a nil card when the issue is not on the board.
func (s *Server) findIssueCard(ctx context.Context, repo *Repository, columns []*github.ProjectColumn, number int) (*github.ProjectCard, int64, error) {
	suffix := fmt.Sprintf("/repos/%s/%s/issues/%d", repo.Owner, repo.Name, number)
	for _, column := range columns {
		opts := &github.ProjectCardListOptions{
			ArchivedState: github.String("not_archived"),
			ListOptions:   github.ListOptions{PerPage: perPage},
		}
		for {
			cards, resp, err := s.GithubClient.Projects.ListProjectCards(ctx, column.GetID(), opts)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "unable to list cards of column %d", column.GetID())
			}
			for _, card := range cards {
				if strings.HasSuffix(card.GetContentURL(), suffix) {
					return card, column.GetID(), nil
				}
			}
			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
	}
	return nil, 0, nil
}

func (s *Server) addIssueCard(ctx context.Context, issueID, columnID int64) error {
	if _, _, err := s.GithubClient.Projects.CreateProjectCard(ctx, columnID, &github.ProjectCardOptions{
		ContentID:   issueID,
		ContentType: "Issue",
	}); err != nil {
		return errors.Wrapf(err, "unable to add issue %d to column %d", issueID, columnID)
	}
	return nil
}

// placeCard makes sure the card of an issue sits in the named column. An
// issue that is not on the board is added only when issueID is known.
func (s *Server) placeCard(ctx context.Context, repo *Repository, number int, issueID int64, column string) error {
	columns, err := s.projectColumns(ctx, repo)
	if err != nil {
		return err
	}

	columnID, ok := columnIDByName(columns, column)
	if !ok {
		return &workflow.NotFoundError{Kind: "column", Name: column}
	}

	card, currentColumnID, err := s.findIssueCard(ctx, repo, columns, number)
	if err != nil {
		return err
	}

	if card == nil {
		if issueID == 0 {
			mlog.Debug("Issue is not on the board", mlog.String("repo", repo.Name), mlog.Int("issue", number))
			return nil
		}
		return s.addIssueCard(ctx, issueID, columnID)
	}

	if currentColumnID == columnID {
		return nil
	}
	return s.MoveCard(ctx, card.GetID(), columnID)
}

// parseIssueURL splits an API content URL such as
// https://api.github.com/repos/owner/name/issues/12.
func parseIssueURL(contentURL string) (owner, name string, number int, err error) {
	parts := strings.Split(strings.TrimRight(contentURL, "/"), "/")
	if len(parts) < 5 || parts[len(parts)-5] != "repos" || parts[len(parts)-2] != "issues" {
		return "", "", 0, errors.Errorf("not an issue url: %q", contentURL)
	}
	number, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", "", 0, errors.Wrapf(err, "invalid issue number in %q", contentURL)
	}
	return parts[len(parts)-4], parts[len(parts)-3], number, nil
}

func labelNames(labels []*github.Label) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.GetName())
	}
	return names
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
