// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	dir, err := ioutil.TempDir("", "boardsync-config")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestGetConfig(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeConfigFile(t, "config.json", `{
			"GithubAccessToken": "secret",
			"GitHubTokenReserve": 50,
			"Repositories": [{"Owner": "mattermost", "Name": "focalboard", "ProjectID": 7}],
			"Labels": {"AwaitingPullRequest": "PR Pending"},
			"Columns": {"Done": "Ready"},
			"LogSettings": {"EnableConsole": true, "ConsoleJson": true, "ConsoleLevel": "DEBUG"}
		}`)

		config, err := GetConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "secret", config.GithubAccessToken)
		assert.Equal(t, 50, config.GitHubTokenReserve)
		require.Len(t, config.Repositories, 1)
		assert.Equal(t, int64(7), config.Repositories[0].ProjectID)
		assert.True(t, config.LogSettings.ConsoleJSON)

		assert.Equal(t, "PR Pending", config.WorkflowLabels().AwaitingPullRequest)
		assert.Equal(t, "Triage", config.WorkflowLabels().Triage)
		assert.Equal(t, "Ready", config.WorkflowColumns().Done)
		assert.Equal(t, "In progress", config.WorkflowColumns().Working)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeConfigFile(t, "config.yaml", `
github_access_token: secret
username: boardsync-bot
listen_address: ":9999"
repositories:
  - owner: mattermost
    name: focalboard
    project_id: 7
labels:
  working: In Progress
mattermost_webhook_url: https://chat.example.com/hooks/abc
`)

		config, err := GetConfig(path)
		require.NoError(t, err)

		assert.Equal(t, ":9999", config.ListenAddress)
		assert.Equal(t, "boardsync-bot", config.Username)
		assert.Equal(t, "https://chat.example.com/hooks/abc", config.MattermostWebhookURL)
		repo, ok := config.GetRepository("mattermost", "focalboard")
		require.True(t, ok)
		assert.Equal(t, int64(7), repo.ProjectID)
		assert.Equal(t, "In Progress", config.WorkflowLabels().Working)
	})

	t.Run("defaults", func(t *testing.T) {
		path := writeConfigFile(t, "config.json", `{
			"GithubAccessToken": "secret",
			"Repositories": [{"Owner": "mattermost", "Name": "focalboard", "ProjectID": 7}]
		}`)

		config, err := GetConfig(path)
		require.NoError(t, err)

		assert.Equal(t, defaultListenAddress, config.ListenAddress)
		assert.Equal(t, defaultMetricsServerPort, config.MetricsServerPort)
		assert.Equal(t, defaultTickRateMinutes, config.TickRateMinutes)
		assert.Equal(t, defaultGithubAPIRequestsPerSecond, config.GithubAPIRequestsPerSecond)
		assert.Equal(t, defaultGithubCacheSizeBytes, config.GithubCacheSizeBytes)
		assert.Equal(t, int64(defaultGithubCacheMaxAgeSeconds), config.GithubCacheMaxAgeSeconds)
		assert.Equal(t, defaultDriverName, config.DriverName)
		assert.Equal(t, workflow.DefaultLabels(), config.WorkflowLabels())
		assert.Equal(t, workflow.DefaultColumns(), config.WorkflowColumns())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := GetConfig(filepath.Join(os.TempDir(), "boardsync-does-not-exist.json"))
		require.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeConfigFile(t, "config.json", `{"GithubAccessToken": `)
		_, err := GetConfig(path)
		require.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		config Config
	}{
		{"no token", Config{Repositories: []*Repository{{Owner: "o", Name: "n", ProjectID: 1}}}},
		{"no repositories", Config{GithubAccessToken: "t"}},
		{"repository without name", Config{GithubAccessToken: "t", Repositories: []*Repository{{Owner: "o", ProjectID: 1}}}},
		{"repository without project", Config{GithubAccessToken: "t", Repositories: []*Repository{{Owner: "o", Name: "n"}}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.config.Validate())
		})
	}

	valid := testConfig()
	assert.NoError(t, valid.Validate())
}

func TestLogTargets(t *testing.T) {
	cfg, err := logTargets(LogSettings{})
	require.NoError(t, err)
	assert.Empty(t, cfg)

	cfg, err = logTargets(LogSettings{
		EnableConsole: true,
		ConsoleLevel:  "error",
		EnableFile:    true,
		FileJSON:      true,
		FileLevel:     "debug",
		FileLocation:  "/var/log/boardsync",
	})
	require.NoError(t, err)
	require.Len(t, cfg, 2)

	assert.Equal(t, "plain", cfg["console"].Format)
	assert.Len(t, cfg["console"].Levels, 3)
	assert.Equal(t, "json", cfg["file"].Format)
	assert.Len(t, cfg["file"].Levels, 6)
	assert.Contains(t, string(cfg["file"].Options), `"filename":"/var/log/boardsync/boardsync.log"`)
}
