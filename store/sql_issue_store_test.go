// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/mattermost/mattermost-boardsync/model"
	"github.com/stretchr/testify/require"
)

func TestIssueStore(t *testing.T) {
	store := getTestSQLStore(t)
	issueStore := store.Issue()
	milestone := int64(9)
	issue := &model.Issue{
		RepoOwner:       "testowner",
		RepoName:        "test-repo-name",
		Number:          123,
		State:           "open",
		Labels:          model.StringArray{"Bug", "Working"},
		MilestoneNumber: &milestone,
		UpdatedAt:       time.Now().UTC().Truncate(time.Second),
	}

	t.Run("Should save the issue", func(t *testing.T) {
		defer truncateTable(t, store, "Issues")
		savedIssue, err := issueStore.Save(issue)
		require.NoError(t, err)
		require.Equal(t, issue, savedIssue)
	})

	t.Run("Should get the requested issue", func(t *testing.T) {
		defer truncateTable(t, store, "Issues")
		_, err := issueStore.Save(issue)
		require.NoError(t, err)
		retrievedIssue, err := issueStore.Get(issue.RepoOwner, issue.RepoName, issue.Number)
		require.NoError(t, err)
		require.Equal(t, issue, retrievedIssue)
	})

	t.Run("Should update an existing issue", func(t *testing.T) {
		defer truncateTable(t, store, "Issues")
		_, err := issueStore.Save(issue)
		require.NoError(t, err)

		updated := *issue
		updated.Labels = model.StringArray{"Bug", "Fixed"}
		updated.State = model.StateClosed
		updated.MilestoneNumber = nil
		_, err = issueStore.Save(&updated)
		require.NoError(t, err)

		retrievedIssue, err := issueStore.Get(issue.RepoOwner, issue.RepoName, issue.Number)
		require.NoError(t, err)
		require.Equal(t, &updated, retrievedIssue)
	})

	t.Run("Should keep a long label set", func(t *testing.T) {
		defer truncateTable(t, store, "Issues")
		crowded := *issue
		crowded.Labels = nil
		for i := 0; i < 60; i++ {
			crowded.Labels = append(crowded.Labels, fmt.Sprintf("Area/component-with-a-long-name-%02d", i))
		}
		_, err := issueStore.Save(&crowded)
		require.NoError(t, err)

		retrievedIssue, err := issueStore.Get(issue.RepoOwner, issue.RepoName, issue.Number)
		require.NoError(t, err)
		require.Equal(t, crowded.Labels, retrievedIssue.Labels)
	})

	t.Run("Should return empty if can't find rows with Get", func(t *testing.T) {
		defer truncateTable(t, store, "Issues")
		retrievedIssue, err := issueStore.Get(issue.RepoOwner, issue.RepoName, issue.Number)
		require.NoError(t, err)
		require.Nil(t, retrievedIssue)
	})
}
