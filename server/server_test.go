// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-boardsync/model"
	"github.com/mattermost/mattermost-boardsync/server/mocks"
	stmock "github.com/mattermost/mattermost-boardsync/store/mocks"
	"github.com/stretchr/testify/require"
)

const (
	testOwner     = "mattermost"
	testRepo      = "focalboard"
	testProjectID = int64(1)
)

var ctxInterface = reflect.TypeOf((*context.Context)(nil)).Elem()

type testMocks struct {
	issues       *mocks.MockIssuesService
	milestones   *mocks.MockMilestonesService
	projects     *mocks.MockProjectsService
	pullRequests *mocks.MockPullRequestsService
	metrics      *mocks.MockProvider

	store      *stmock.MockStore
	issueStore *stmock.MockIssueStore
	prStore    *stmock.MockPullRequestStore
}

func testConfig() *Config {
	config := &Config{
		GithubAccessToken: "token",
		Repositories: []*Repository{
			{Owner: testOwner, Name: testRepo, ProjectID: testProjectID},
		},
	}
	config.setDefaults()
	return config
}

// setupTestServer returns a server wired to mocks. Snapshots may be read and
// written any number of times.
func setupTestServer(t *testing.T) (*Server, *testMocks) {
	ctrl := gomock.NewController(t)

	m := &testMocks{
		issues:       mocks.NewMockIssuesService(ctrl),
		milestones:   mocks.NewMockMilestonesService(ctrl),
		projects:     mocks.NewMockProjectsService(ctrl),
		pullRequests: mocks.NewMockPullRequestsService(ctrl),
		metrics:      mocks.NewMockProvider(ctrl),
		store:        stmock.NewMockStore(ctrl),
		issueStore:   stmock.NewMockIssueStore(ctrl),
		prStore:      stmock.NewMockPullRequestStore(ctrl),
	}

	m.store.EXPECT().Issue().Return(m.issueStore).AnyTimes()
	m.store.EXPECT().PullRequest().Return(m.prStore).AnyTimes()
	m.issueStore.EXPECT().Get(testOwner, testRepo, gomock.Any()).Return(nil, nil).AnyTimes()
	m.issueStore.EXPECT().Save(gomock.Any()).Return(nil, nil).AnyTimes()
	m.prStore.EXPECT().Save(gomock.Any()).Return(nil, nil).AnyTimes()

	m.metrics.EXPECT().ObserveHTTPRequestDuration(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.metrics.EXPECT().IncreaseWebhookRequest(gomock.Any()).AnyTimes()
	m.metrics.EXPECT().IncreaseWebhookErrors(gomock.Any()).AnyTimes()
	m.metrics.EXPECT().IncreaseTransitions(gomock.Any()).AnyTimes()

	client := &GithubClient{
		Issues:       m.issues,
		Milestones:   m.milestones,
		Projects:     m.projects,
		PullRequests: m.pullRequests,
	}

	return newServer(testConfig(), m.store, client, m.metrics), m
}

// trackSnapshots replaces the issue store of s with one that keeps the
// snapshots in memory, keyed by issue number.
func trackSnapshots(t *testing.T, s *Server) map[int]*model.Issue {
	ctrl := gomock.NewController(t)
	snapshots := map[int]*model.Issue{}

	issueStore := stmock.NewMockIssueStore(ctrl)
	issueStore.EXPECT().Get(testOwner, testRepo, gomock.Any()).
		DoAndReturn(func(_, _ string, number int) (*model.Issue, error) {
			return snapshots[number], nil
		}).AnyTimes()
	issueStore.EXPECT().Save(gomock.Any()).
		DoAndReturn(func(issue *model.Issue) (*model.Issue, error) {
			snapshots[issue.Number] = issue
			return issue, nil
		}).AnyTimes()

	st := stmock.NewMockStore(ctrl)
	st.EXPECT().Issue().Return(issueStore).AnyTimes()
	s.Store = st
	return snapshots
}

func lastPage() *github.Response {
	return &github.Response{Response: &http.Response{StatusCode: http.StatusOK}}
}

func ghLabels(names ...string) []*github.Label {
	labels := make([]*github.Label, 0, len(names))
	for _, name := range names {
		labels = append(labels, &github.Label{Name: github.String(name)})
	}
	return labels
}

// board columns used by the tests: the three fixed ones and a milestone.
var testColumns = []*github.ProjectColumn{
	{ID: github.Int64(10), Name: github.String("Triage")},
	{ID: github.Int64(11), Name: github.String("In progress")},
	{ID: github.Int64(12), Name: github.String("Done")},
	{ID: github.Int64(13), Name: github.String("v7.1")},
}

func issueCard(cardID int64, number int) *github.ProjectCard {
	return &github.ProjectCard{
		ID:         github.Int64(cardID),
		ContentURL: github.String(fmt.Sprintf("https://api.github.com/repos/%s/%s/issues/%d", testOwner, testRepo, number)),
	}
}

// expectBoard serves testColumns with card placed in column cardColumn.
// A nil card leaves the board empty.
func (m *testMocks) expectBoard(card *github.ProjectCard, cardColumn int64) {
	m.projects.EXPECT().
		ListProjectColumns(gomock.AssignableToTypeOf(ctxInterface), testProjectID, gomock.Any()).
		Return(testColumns, lastPage(), nil)

	for _, column := range testColumns {
		var cards []*github.ProjectCard
		if card != nil && column.GetID() == cardColumn {
			cards = []*github.ProjectCard{card}
		}
		m.projects.EXPECT().
			ListProjectCards(gomock.AssignableToTypeOf(ctxInterface), column.GetID(), gomock.Any()).
			Return(cards, lastPage(), nil).
			MaxTimes(1)
	}
}

func TestPing(t *testing.T) {
	s, _ := setupTestServer(t)

	ts := httptest.NewServer(s.Router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body pingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Info)
	require.NotEmpty(t, body.Info.Version)
	require.NotEmpty(t, body.Uptime)
}

func TestWithRecovery(t *testing.T) {
	s, _ := setupTestServer(t)

	handler := s.withRecovery(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodPost, "/webhook", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
