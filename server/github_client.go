// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/die-net/lrucache"
	"github.com/google/go-github/v39/github"
	"github.com/m4ns0ur/httpcache"
	"github.com/mattermost/mattermost-boardsync/metrics"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

//go:generate mockgen -destination=mocks/github.go -package=mocks github.com/mattermost/mattermost-boardsync/server IssuesService,MilestonesService,ProjectsService,PullRequestsService

type IssuesService interface {
	Edit(ctx context.Context, owner string, repo string, number int, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
	Get(ctx context.Context, owner string, repo string, number int) (*github.Issue, *github.Response, error)
	ListByRepo(ctx context.Context, owner string, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
	ListLabelsByIssue(ctx context.Context, owner string, repo string, number int, opts *github.ListOptions) ([]*github.Label, *github.Response, error)
	ListMilestones(ctx context.Context, owner string, repo string, opts *github.MilestoneListOptions) ([]*github.Milestone, *github.Response, error)
	ReplaceLabelsForIssue(ctx context.Context, owner string, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
}

type ProjectsService interface {
	CreateProjectCard(ctx context.Context, columnID int64, opts *github.ProjectCardOptions) (*github.ProjectCard, *github.Response, error)
	GetProjectColumn(ctx context.Context, id int64) (*github.ProjectColumn, *github.Response, error)
	ListProjectCards(ctx context.Context, columnID int64, opts *github.ProjectCardListOptions) ([]*github.ProjectCard, *github.Response, error)
	ListProjectColumns(ctx context.Context, projectID int64, opts *github.ListOptions) ([]*github.ProjectColumn, *github.Response, error)
	MoveProjectCard(ctx context.Context, cardID int64, opts *github.ProjectCardMoveOptions) (*github.Response, error)
}

type PullRequestsService interface {
	Edit(ctx context.Context, owner string, repo string, number int, pull *github.PullRequest) (*github.PullRequest, *github.Response, error)
	Get(ctx context.Context, owner string, repo string, number int) (*github.PullRequest, *github.Response, error)
	List(ctx context.Context, owner string, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	ListCommits(ctx context.Context, owner string, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	ListPullRequestsWithCommit(ctx context.Context, owner, repo, sha string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
}

// MilestonesService clears issue milestones. IssueRequest drops a nil
// milestone from the body, so the request is built by hand.
type MilestonesService interface {
	RemoveMilestone(ctx context.Context, owner, repo string, number int) (*github.Response, error)
}

type issueMilestones struct {
	client *github.Client
}

func (m *issueMilestones) RemoveMilestone(ctx context.Context, owner, repo string, number int) (*github.Response, error) {
	u := fmt.Sprintf("repos/%v/%v/issues/%d", owner, repo, number)
	req, err := m.client.NewRequest(http.MethodPatch, u, map[string]interface{}{"milestone": nil})
	if err != nil {
		return nil, err
	}
	return m.client.Do(ctx, req, nil)
}

// GithubClient wraps the github.Client with relevant interfaces.
type GithubClient struct {
	client *github.Client

	Issues       IssuesService
	Milestones   MilestonesService
	Projects     ProjectsService
	PullRequests PullRequestsService
}

// GithubClientOptions tunes the transport chain of NewGithubClient.
type GithubClientOptions struct {
	RequestsPerSecond int
	CacheSizeBytes    int
	CacheMaxAge       int64
	Metrics           metrics.Provider
}

// NewGithubClient builds the one client shared by every handler. Requests
// go through, from the outside in: the token source, the metrics transport,
// the LRU response cache and the rate limiter.
func NewGithubClient(accessToken string, opts GithubClientOptions) *GithubClient {
	var base http.RoundTripper = http.DefaultTransport
	if opts.RequestsPerSecond > 0 {
		base = NewRateLimitTransport(rate.Limit(opts.RequestsPerSecond), opts.RequestsPerSecond, base)
	}

	if opts.CacheSizeBytes > 0 {
		cache := httpcache.NewTransport(lrucache.New(int64(opts.CacheSizeBytes), opts.CacheMaxAge))
		cache.Transport = base
		cache.MarkCachedResponses = true
		base = cache
	}

	if opts.Metrics != nil {
		base = metrics.NewTransport(base, opts.Metrics)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	tc := &http.Client{
		Transport: &oauth2.Transport{
			Source: ts,
			Base:   base,
		},
	}

	return newGithubClient(github.NewClient(tc))
}

func newGithubClient(client *github.Client) *GithubClient {
	return &GithubClient{
		client:       client,
		Issues:       client.Issues,
		Milestones:   &issueMilestones{client: client},
		Projects:     client.Projects,
		PullRequests: client.PullRequests,
	}
}

func (c *GithubClient) RateLimits(ctx context.Context) (*github.RateLimits, *github.Response, error) {
	return c.client.RateLimits(ctx)
}
