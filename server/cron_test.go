// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-boardsync/model"
	stmock "github.com/mattermost/mattermost-boardsync/store/mocks"
)

func TestSyncBoard(t *testing.T) {
	t.Run("triages unlabeled issues and rescans open pull requests", func(t *testing.T) {
		s, m := setupTestServer(t)

		locker := stmock.NewMockLocker(gomock.NewController(t))
		m.store.EXPECT().Mutex(syncBoardTaskName).Return(locker)
		locker.EXPECT().Lock(gomock.AssignableToTypeOf(ctxInterface)).Return(nil)
		locker.EXPECT().Unlock().Return(nil)

		m.issues.EXPECT().
			ListByRepo(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, gomock.Any()).
			Return([]*github.Issue{
				{ID: github.Int64(100), Number: github.Int(1), Labels: ghLabels("Working")},
				{ID: github.Int64(200), Number: github.Int(2), PullRequestLinks: &github.PullRequestLinks{URL: github.String("https://api.github.com/pulls/2")}},
				{ID: github.Int64(300), Number: github.Int(3), Labels: ghLabels("Docs")},
			}, lastPage(), nil)
		m.issues.EXPECT().
			ReplaceLabelsForIssue(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 3, []string{"Docs", "Triage"}).
			Return(nil, lastPage(), nil)
		m.expectBoard(nil, 0)
		m.projects.EXPECT().
			CreateProjectCard(gomock.AssignableToTypeOf(ctxInterface), int64(10), &github.ProjectCardOptions{ContentID: 300, ContentType: "Issue"}).
			Return(&github.ProjectCard{ID: github.Int64(9)}, lastPage(), nil)

		m.prStore.EXPECT().ListOpen().Return([]*model.PullRequest{
			{RepoOwner: testOwner, RepoName: testRepo, Number: 100, State: model.StateOpen},
			{RepoOwner: testOwner, RepoName: "retired", Number: 5, State: model.StateOpen},
		}, nil)
		m.pullRequests.EXPECT().Get(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 100).
			Return(&github.PullRequest{Number: github.Int(100), State: github.String("closed"), Merged: github.Bool(false)}, lastPage(), nil)
		m.expectCommits(100)

		m.metrics.EXPECT().ObserveCronTaskDuration(syncBoardTaskName, gomock.Any())

		s.SyncBoard()
	})

	t.Run("nothing happens without the lock", func(t *testing.T) {
		s, m := setupTestServer(t)

		locker := stmock.NewMockLocker(gomock.NewController(t))
		m.store.EXPECT().Mutex(syncBoardTaskName).Return(locker)
		locker.EXPECT().Lock(gomock.AssignableToTypeOf(ctxInterface)).Return(errors.New("held elsewhere"))

		m.metrics.EXPECT().IncreaseCronTaskErrors(syncBoardTaskName)
		m.metrics.EXPECT().ObserveCronTaskDuration(syncBoardTaskName, gomock.Any())

		s.SyncBoard()
	})

	t.Run("listing failure is counted", func(t *testing.T) {
		s, m := setupTestServer(t)

		locker := stmock.NewMockLocker(gomock.NewController(t))
		m.store.EXPECT().Mutex(syncBoardTaskName).Return(locker)
		locker.EXPECT().Lock(gomock.AssignableToTypeOf(ctxInterface)).Return(nil)
		locker.EXPECT().Unlock().Return(nil)

		m.issues.EXPECT().
			ListByRepo(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, gomock.Any()).
			Return(nil, nil, errors.New("boom"))
		m.prStore.EXPECT().ListOpen().Return(nil, nil)

		m.metrics.EXPECT().IncreaseCronTaskErrors(syncBoardTaskName)
		m.metrics.EXPECT().ObserveCronTaskDuration(syncBoardTaskName, gomock.Any())

		s.SyncBoard()
	})
}
