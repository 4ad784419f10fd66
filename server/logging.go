// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const logFilename = "boardsync.log"

func getLogFileLocation(fileLocation string) string {
	if fileLocation == "" {
		fileLocation = "logs"
	}
	return filepath.Join(fileLocation, logFilename)
}

// levelsFrom returns every level at or above the named one.
func levelsFrom(name string) []mlog.Level {
	levels := []mlog.Level{mlog.LvlPanic, mlog.LvlFatal, mlog.LvlError}
	switch strings.ToLower(name) {
	case "error":
		return levels
	case "warn":
		return append(levels, mlog.LvlWarn)
	case "debug":
		return append(levels, mlog.LvlWarn, mlog.LvlInfo, mlog.LvlDebug)
	default:
		return append(levels, mlog.LvlWarn, mlog.LvlInfo)
	}
}

func formatOf(useJSON bool) string {
	if useJSON {
		return "json"
	}
	return "plain"
}

func logTargets(settings LogSettings) (mlog.LoggerConfiguration, error) {
	cfg := make(mlog.LoggerConfiguration)

	if settings.EnableConsole {
		cfg["console"] = mlog.TargetCfg{
			Type:         "console",
			Format:       formatOf(settings.ConsoleJSON),
			Levels:       levelsFrom(settings.ConsoleLevel),
			Options:      json.RawMessage(`{"out":"stdout"}`),
			MaxQueueSize: 1000,
		}
	}

	if settings.EnableFile {
		options, err := json.Marshal(map[string]interface{}{
			"filename":    getLogFileLocation(settings.FileLocation),
			"max_size":    100,
			"max_age":     0,
			"max_backups": 0,
			"compress":    true,
		})
		if err != nil {
			return nil, err
		}
		cfg["file"] = mlog.TargetCfg{
			Type:         "file",
			Format:       formatOf(settings.FileJSON),
			Levels:       levelsFrom(settings.FileLevel),
			Options:      options,
			MaxQueueSize: 1000,
		}
	}

	return cfg, nil
}

// SetupLogging replaces the global logger with one built from the config.
func SetupLogging(config *Config) error {
	cfg, err := logTargets(config.LogSettings)
	if err != nil {
		return errors.Wrap(err, "unable to build log targets")
	}

	logger, err := mlog.NewLogger()
	if err != nil {
		return errors.Wrap(err, "unable to create logger")
	}
	if err := logger.ConfigureTargets(cfg, nil); err != nil {
		return errors.Wrap(err, "unable to configure log targets")
	}

	mlog.InitGlobalLogger(logger)
	return nil
}
