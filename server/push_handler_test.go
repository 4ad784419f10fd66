// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-github/v39/github"
	"github.com/stretchr/testify/assert"
)

func pushPayload(ref string, messages ...string) string {
	commits := ""
	for i, message := range messages {
		if i > 0 {
			commits += ","
		}
		commits += fmt.Sprintf(`{"id": "c%d", "message": %q}`, i, message)
	}
	return fmt.Sprintf(`{
		"ref": %q,
		"commits": [%s],
		"sender": {"login": "alice"},
		"repository": {"name": "focalboard", "owner": {"name": "mattermost"}}
	}`, ref, commits)
}

func TestPushEvent(t *testing.T) {
	t.Run("commits move mentioned issues and refresh the open pull request of the branch", func(t *testing.T) {
		s, m := setupTestServer(t)

		m.expectIssue(42, "open", "Working")
		m.issues.EXPECT().
			ReplaceLabelsForIssue(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 42, []string{"Awaiting PR"}).
			Return(nil, lastPage(), nil)
		m.expectBoard(issueCard(5, 42), 11)
		m.projects.EXPECT().
			MoveProjectCard(gomock.AssignableToTypeOf(ctxInterface), int64(5), &github.ProjectCardMoveOptions{Position: "top", ColumnID: 12}).
			Return(lastPage(), nil)

		m.pullRequests.EXPECT().
			List(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, gomock.Any()).
			Return([]*github.PullRequest{
				{Number: github.Int(100), State: github.String("open"), User: &github.User{Login: github.String("Alice")}, Head: &github.PullRequestBranch{Ref: github.String("fix-board")}},
				{Number: github.Int(101), State: github.String("open"), User: &github.User{Login: github.String("alice")}, Head: &github.PullRequestBranch{Ref: github.String("other")}},
				{Number: github.Int(102), State: github.String("open"), User: &github.User{Login: github.String("bob")}, Head: &github.PullRequestBranch{Ref: github.String("fix-board")}},
			}, lastPage(), nil)
		m.expectCommits(100, "Fixes #42")
		m.expectIssue(42, "open", "Awaiting PR")
		m.pullRequests.EXPECT().
			Edit(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 100, &github.PullRequest{
				Body: github.String("<!-- boardsync:mentions -->\nFixes #42\n<!-- /boardsync:mentions -->"),
			}).
			Return(nil, lastPage(), nil)

		w := postEvent(s, "push", pushPayload("refs/heads/fix-board", "Fixes #42"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("tag pushes only look at the commits", func(t *testing.T) {
		s, m := setupTestServer(t)

		m.expectIssue(7, "open", "Triage")
		m.issues.EXPECT().
			ReplaceLabelsForIssue(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 7, []string{"Working"}).
			Return(nil, lastPage(), nil)
		m.expectBoard(issueCard(8, 7), 10)
		m.projects.EXPECT().
			MoveProjectCard(gomock.AssignableToTypeOf(ctxInterface), int64(8), &github.ProjectCardMoveOptions{Position: "top", ColumnID: 11}).
			Return(lastPage(), nil)

		w := postEvent(s, "push", pushPayload("refs/tags/v1.0.0", "Tidy up for #7"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
