// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/mattermost/mattermost-boardsync/model"
	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/stretchr/testify/require"
)

func TestPullRequestStore(t *testing.T) {
	store := getTestSQLStore(t)
	prStore := store.PullRequest()
	merged := false
	pr := &model.PullRequest{
		RepoOwner: "owner",
		RepoName:  "repo",
		Number:    7,
		Username:  "someone",
		Ref:       "fix-crash",
		State:     model.StateOpen,
		Merged:    &merged,
		Mentions: model.MentionList{
			{IssueNumber: 3, Resolved: true},
			{IssueNumber: 4},
		},
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}

	t.Run("Should save and get the PR", func(t *testing.T) {
		defer truncateTable(t, store, "PullRequests")
		_, err := prStore.Save(pr)
		require.NoError(t, err)

		got, err := prStore.Get(pr.RepoOwner, pr.RepoName, pr.Number)
		require.NoError(t, err)
		require.Equal(t, pr, got)
		require.Equal(t, []workflow.Mention{{IssueNumber: 3, Resolved: true}}, workflow.Resolved(got.Mentions))
	})

	t.Run("Should only list open PRs", func(t *testing.T) {
		defer truncateTable(t, store, "PullRequests")
		_, err := prStore.Save(pr)
		require.NoError(t, err)

		closed := *pr
		closed.Number = 8
		closed.State = model.StateClosed
		_, err = prStore.Save(&closed)
		require.NoError(t, err)

		prs, err := prStore.ListOpen()
		require.NoError(t, err)
		require.Len(t, prs, 1)
		require.Equal(t, pr.Number, prs[0].Number)
	})

	t.Run("Should keep a ref of the maximum git length", func(t *testing.T) {
		defer truncateTable(t, store, "PullRequests")
		long := *pr
		long.Ref = "feature/" + strings.Repeat("x", 247)
		require.Len(t, long.Ref, 255)
		_, err := prStore.Save(&long)
		require.NoError(t, err)

		got, err := prStore.Get(pr.RepoOwner, pr.RepoName, pr.Number)
		require.NoError(t, err)
		require.Equal(t, long.Ref, got.Ref)
	})

	t.Run("Should return empty if can't find rows with Get", func(t *testing.T) {
		got, err := prStore.Get("owner", "repo", 999)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
