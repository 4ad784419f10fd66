// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"context"

	"github.com/mattermost/mattermost-boardsync/model"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/mattermost/mattermost-boardsync/store Store,IssueStore,PullRequestStore,Locker

type Store interface {
	Issue() IssueStore
	PullRequest() PullRequestStore
	// Mutex returns a lock shared by every boardsync instance using the
	// same database.
	Mutex(key string) Locker
	Close() error
}

type IssueStore interface {
	Save(issue *model.Issue) (*model.Issue, error)
	Get(repoOwner, repoName string, number int) (*model.Issue, error)
}

type PullRequestStore interface {
	Save(pr *model.PullRequest) (*model.PullRequest, error)
	Get(repoOwner, repoName string, number int) (*model.PullRequest, error)
	ListOpen() ([]*model.PullRequest, error)
}

type Locker interface {
	Lock(ctx context.Context) error
	Unlock() error
}
