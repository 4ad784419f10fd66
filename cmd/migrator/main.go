// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package main

import (
	"flag"
	"os"

	"github.com/mattermost/mattermost-boardsync/server"
	"github.com/mattermost/mattermost-boardsync/store"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

var (
	configFile     string
	migrateVersion int
)

func init() {
	flag.StringVar(&configFile, "config", "config-boardsync.json", "path to the JSON or YAML config file")
	flag.IntVar(&migrateVersion, "migration_version", -1, "Specify the target version to migrate to.")
}

func main() {
	flag.Parse()

	config, err := server.GetConfig(configFile)
	if err != nil {
		mlog.Error("unable to load server config", mlog.Err(err), mlog.String("file", configFile))
		os.Exit(1)
	}
	if err = server.SetupLogging(config); err != nil {
		mlog.Error("unable to configure logging", mlog.Err(err))
		os.Exit(1)
	}

	if migrateVersion <= 0 {
		mlog.Error("a positive -migration_version is required", mlog.Int("migration_version", migrateVersion))
		os.Exit(1)
	}

	if err = store.MigrateTo(config.DriverName, config.DataSource, uint(migrateVersion)); err != nil {
		mlog.Error("Failed to run migrations", mlog.Err(err))
		os.Exit(1)
	}
	mlog.Info("Migrated database", mlog.Int("version", migrateVersion))
}
