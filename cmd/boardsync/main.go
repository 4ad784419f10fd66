// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattermost/mattermost-boardsync/metrics"
	"github.com/mattermost/mattermost-boardsync/server"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

var (
	configFile string
)

func init() {
	flag.StringVar(&configFile, "config", "config-boardsync.json", "path to the JSON or YAML config file")
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

	// Metrics system
	metricsProvider := metrics.NewPrometheusProvider()
	metricsServer := metrics.NewServer(metrics.ServerOptions{
		Port:            config.MetricsServerPort,
		EnableProfiling: config.EnableProfiling,
	}, metricsProvider.Handler())
	if err = metricsServer.Start(); err != nil {
		mlog.Error("unable to start metrics server", mlog.Err(err))
		os.Exit(1)
	}
	defer metricsServer.Stop()

	mlog.Info("Loaded config", mlog.String("filename", configFile))
	s, err := server.New(config, metricsProvider)
	if err != nil {
		mlog.Error("unable to start server", mlog.Err(err))
		return
	}

	s.Start()

	defer func() {
		if err2 := s.Stop(); err2 != nil {
			mlog.Error("error while shutting down server", mlog.Err(err2))
			os.Exit(1)
		}
		mlog.Info("Stopped boardsync server")
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-sig
}
