// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"database/sql"
	"fmt"

	"github.com/mattermost/mattermost-boardsync/model"
)

type SQLPullRequestStore struct {
	*SQLStore
}

func NewSQLPullRequestStore(sqlStore *SQLStore) PullRequestStore {
	return &SQLPullRequestStore{sqlStore}
}

func (s SQLPullRequestStore) Save(pr *model.PullRequest) (*model.PullRequest, error) {
	if _, err := s.dbx.NamedExec(
		`INSERT INTO PullRequests
			(RepoOwner, RepoName, Number, Username, Ref, State, Merged, Mentions, UpdatedAt)
		VALUES
			(:RepoOwner, :RepoName, :Number, :Username, :Ref, :State, :Merged, :Mentions, :UpdatedAt)
		ON DUPLICATE KEY UPDATE
			Username = VALUES(Username), Ref = VALUES(Ref), State = VALUES(State),
			Merged = VALUES(Merged), Mentions = VALUES(Mentions), UpdatedAt = VALUES(UpdatedAt)`, pr); err != nil {
		return nil, fmt.Errorf("could not insert or update PR: owner=%v, name=%v, number=%v, err=%w", pr.RepoOwner, pr.RepoName, pr.Number, err)
	}
	return pr, nil
}

func (s SQLPullRequestStore) Get(repoOwner, repoName string, number int) (*model.PullRequest, error) {
	var pr model.PullRequest
	if err := s.dbx.Get(&pr,
		`SELECT
				*
			FROM
				PullRequests
			WHERE
				RepoOwner = ?
				AND RepoName = ?
				AND Number = ?`, repoOwner, repoName, number); err != nil {
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("could not get PR: owner=%v, name=%v, number=%v, err=%w", repoOwner, repoName, number, err)
		}
		return nil, nil // row not found.
	}
	return &pr, nil
}

func (s SQLPullRequestStore) ListOpen() ([]*model.PullRequest, error) {
	var prs []*model.PullRequest
	if err := s.dbx.Select(&prs,
		`SELECT
				*
			FROM
				PullRequests
			WHERE
				State = 'open'`); err != nil {
		return nil, fmt.Errorf("could not list open PRs: %w", err)
	}
	return prs, nil
}
