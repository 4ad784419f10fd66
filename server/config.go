// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddress              = ":8086"
	defaultMetricsServerPort          = "9000"
	defaultTickRateMinutes            = 60
	defaultGithubAPIRequestsPerSecond = 10
	defaultGithubCacheSizeBytes       = 50 * 1024 * 1024
	defaultGithubCacheMaxAgeSeconds   = 60
	defaultDriverName                 = "mysql"
)

type Repository struct {
	Owner string `json:"Owner" yaml:"owner"`
	Name  string `json:"Name" yaml:"name"`
	// ProjectID is the classic project board whose cards track the issues
	// of this repository.
	ProjectID int64 `json:"ProjectID" yaml:"project_id"`
}

// LabelSettings overrides the workflow label names. Empty fields keep the
// defaults.
type LabelSettings struct {
	Triage              string `json:"Triage" yaml:"triage"`
	Working             string `json:"Working" yaml:"working"`
	AwaitingPullRequest string `json:"AwaitingPullRequest" yaml:"awaiting_pull_request"`
	Fixed               string `json:"Fixed" yaml:"fixed"`
	Complete            string `json:"Complete" yaml:"complete"`
	Bug                 string `json:"Bug" yaml:"bug"`
}

// ColumnSettings overrides the names of the fixed board columns.
type ColumnSettings struct {
	Triage  string `json:"Triage" yaml:"triage"`
	Working string `json:"Working" yaml:"working"`
	Done    string `json:"Done" yaml:"done"`
}

type LogSettings struct {
	EnableConsole bool   `json:"EnableConsole" yaml:"enable_console"`
	ConsoleJSON   bool   `json:"ConsoleJson" yaml:"console_json"`
	ConsoleLevel  string `json:"ConsoleLevel" yaml:"console_level"`
	EnableFile    bool   `json:"EnableFile" yaml:"enable_file"`
	FileJSON      bool   `json:"FileJson" yaml:"file_json"`
	FileLevel     string `json:"FileLevel" yaml:"file_level"`
	FileLocation  string `json:"FileLocation" yaml:"file_location"`
}

type Config struct {
	ListenAddress              string `json:"ListenAddress" yaml:"listen_address"`
	GithubAccessToken          string `json:"GithubAccessToken" yaml:"github_access_token"`
	GithubWebhookSecret        string `json:"GithubWebhookSecret" yaml:"github_webhook_secret"`
	GitHubTokenReserve         int    `json:"GitHubTokenReserve" yaml:"github_token_reserve"`
	GithubAPIRequestsPerSecond int    `json:"GithubAPIRequestsPerSecond" yaml:"github_api_requests_per_second"`
	GithubCacheSizeBytes       int    `json:"GithubCacheSizeBytes" yaml:"github_cache_size_bytes"`
	GithubCacheMaxAgeSeconds   int64  `json:"GithubCacheMaxAgeSeconds" yaml:"github_cache_max_age_seconds"`
	// Username is the GitHub login of the token. Events it sends are skipped.
	Username                   string `json:"Username" yaml:"username"`

	DriverName string `json:"DriverName" yaml:"driver_name"`
	DataSource string `json:"DataSource" yaml:"data_source"`

	MetricsServerPort string `json:"MetricsServerPort" yaml:"metrics_server_port"`
	EnableProfiling   bool   `json:"EnableProfiling" yaml:"enable_profiling"`
	TickRateMinutes   int    `json:"TickRateMinutes" yaml:"tick_rate_minutes"`

	Repositories []*Repository `json:"Repositories" yaml:"repositories"`

	Labels  LabelSettings  `json:"Labels" yaml:"labels"`
	Columns ColumnSettings `json:"Columns" yaml:"columns"`

	MattermostWebhookURL    string `json:"MattermostWebhookURL" yaml:"mattermost_webhook_url"`
	MattermostWebhookFooter string `json:"MattermostWebhookFooter" yaml:"mattermost_webhook_footer"`

	LogSettings LogSettings `json:"LogSettings" yaml:"log_settings"`
}

func FindConfigFile(fileName string) string {
	if _, err := os.Stat("/tmp/" + fileName); err == nil {
		fileName, _ = filepath.Abs("/tmp/" + fileName)
	} else if _, err := os.Stat("./config/" + fileName); err == nil {
		fileName, _ = filepath.Abs("./config/" + fileName)
	} else if _, err := os.Stat("../config/" + fileName); err == nil {
		fileName, _ = filepath.Abs("../config/" + fileName)
	} else if _, err := os.Stat(fileName); err == nil {
		fileName, _ = filepath.Abs(fileName)
	}

	return fileName
}

// GetConfig loads, defaults and validates the configuration. Files ending in
// .yaml or .yml are decoded as YAML, anything else as JSON.
func GetConfig(fileName string) (*Config, error) {
	fileName = FindConfigFile(fileName)

	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open config file")
	}
	defer file.Close()

	config := &Config{}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(config)
	default:
		err = json.NewDecoder(file).Decode(config)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode config file %s", fileName)
	}

	config.setDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) setDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = defaultListenAddress
	}
	if c.MetricsServerPort == "" {
		c.MetricsServerPort = defaultMetricsServerPort
	}
	if c.TickRateMinutes <= 0 {
		c.TickRateMinutes = defaultTickRateMinutes
	}
	if c.GithubAPIRequestsPerSecond <= 0 {
		c.GithubAPIRequestsPerSecond = defaultGithubAPIRequestsPerSecond
	}
	if c.GithubCacheSizeBytes <= 0 {
		c.GithubCacheSizeBytes = defaultGithubCacheSizeBytes
	}
	if c.GithubCacheMaxAgeSeconds <= 0 {
		c.GithubCacheMaxAgeSeconds = defaultGithubCacheMaxAgeSeconds
	}
	if c.DriverName == "" {
		c.DriverName = defaultDriverName
	}
}

func (c *Config) Validate() error {
	if c.GithubAccessToken == "" {
		return errors.New("GithubAccessToken is required")
	}
	if len(c.Repositories) == 0 {
		return errors.New("at least one repository must be configured")
	}
	for i, repo := range c.Repositories {
		if repo == nil || repo.Owner == "" || repo.Name == "" {
			return errors.Errorf("repository %d: owner and name are required", i)
		}
		if repo.ProjectID == 0 {
			return errors.Errorf("repository %s/%s: ProjectID is required", repo.Owner, repo.Name)
		}
	}
	return nil
}

func (c *Config) GetRepository(owner, name string) (*Repository, bool) {
	for _, repo := range c.Repositories {
		if repo.Owner == owner && repo.Name == name {
			return repo, true
		}
	}

	return nil, false
}

// WorkflowLabels returns the label vocabulary with the configured overrides.
func (c *Config) WorkflowLabels() workflow.Labels {
	labels := workflow.DefaultLabels()
	override(&labels.Triage, c.Labels.Triage)
	override(&labels.Working, c.Labels.Working)
	override(&labels.AwaitingPullRequest, c.Labels.AwaitingPullRequest)
	override(&labels.Fixed, c.Labels.Fixed)
	override(&labels.Complete, c.Labels.Complete)
	override(&labels.Bug, c.Labels.Bug)
	return labels
}

// WorkflowColumns returns the fixed column names with the configured
// overrides.
func (c *Config) WorkflowColumns() workflow.Columns {
	columns := workflow.DefaultColumns()
	override(&columns.Triage, c.Columns.Triage)
	override(&columns.Working, c.Columns.Working)
	override(&columns.Done, c.Columns.Done)
	return columns
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
