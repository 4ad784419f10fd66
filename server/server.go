// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/mattermost/mattermost-boardsync/metrics"
	"github.com/mattermost/mattermost-boardsync/store"
	"github.com/mattermost/mattermost-boardsync/version"
	"github.com/mattermost/mattermost-boardsync/workflow"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

const (
	// seconds
	defaultRequestTimeout  = 60
	defaultCronTaskTimeout = 300

	syncBoardTaskName = "sync-board"
)

// Server receives GitHub webhook deliveries and keeps issue labels,
// milestones and board cards in step with them.
type Server struct {
	Config       *Config
	Store        store.Store
	GithubClient *GithubClient
	Metrics      metrics.Provider
	Router       *mux.Router

	labels  workflow.Labels
	columns workflow.Columns

	server    *http.Server
	cron      *cron.Cron
	StartTime time.Time
}

type pingResponse struct {
	Info   *version.Info `json:"info"`
	Uptime string        `json:"uptime"`
}

// New creates a server with a MySQL store and a GitHub client built from
// config.
func New(config *Config, metricsProvider metrics.Provider) (*Server, error) {
	ss, err := store.NewSQLStore(config.DriverName, config.DataSource)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create store")
	}

	client := NewGithubClient(config.GithubAccessToken, GithubClientOptions{
		RequestsPerSecond: config.GithubAPIRequestsPerSecond,
		CacheSizeBytes:    config.GithubCacheSizeBytes,
		CacheMaxAge:       config.GithubCacheMaxAgeSeconds,
		Metrics:           metricsProvider,
	})

	return newServer(config, ss, client, metricsProvider), nil
}

func newServer(config *Config, ss store.Store, client *GithubClient, metricsProvider metrics.Provider) *Server {
	s := &Server{
		Config:       config,
		Store:        ss,
		GithubClient: client,
		Metrics:      metricsProvider,
		labels:       config.WorkflowLabels(),
		columns:      config.WorkflowColumns(),
		StartTime:    time.Now(),
	}
	s.initializeRouter()
	return s
}

// Start serves the webhook endpoint and schedules the board sync.
func (s *Server) Start() {
	mlog.Info("Starting boardsync server")

	s.server = &http.Server{
		Addr:         s.Config.ListenAddress,
		Handler:      s.Router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: defaultRequestTimeout * time.Second,
	}

	go func() {
		mlog.Info("Listening on", mlog.String("address", s.Config.ListenAddress))
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			mlog.Error("Server exited with error", mlog.Err(err))
		}
	}()

	s.cron = cron.New()
	spec := fmt.Sprintf("@every %dm", s.Config.TickRateMinutes)
	if _, err := s.cron.AddFunc(spec, s.SyncBoard); err != nil {
		mlog.Error("failed adding SyncBoard cron", mlog.Err(err))
	}
	s.cron.Start()
}

// Stop stops the scheduler, drains in-flight requests and closes the store.
func (s *Server) Stop() error {
	mlog.Info("Stopping boardsync server")

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRequestTimeout*time.Second)
	defer cancel()
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return errors.Wrap(err, "unable to shut down http server")
		}
	}

	return s.Store.Close()
}

func (s *Server) initializeRouter() {
	s.Router = mux.NewRouter()
	s.Router.HandleFunc("/", s.withRequestDuration("ping", s.ping)).Methods(http.MethodGet)
	s.Router.HandleFunc("/webhook", s.withRequestDuration("webhook", s.withRecovery(s.githubEvent))).Methods(http.MethodPost)
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	msg := pingResponse{
		Info:   version.Full(),
		Uptime: time.Since(s.StartTime).Round(time.Second).String(),
	}

	b, err := json.Marshal(msg)
	if err != nil {
		mlog.Error("Failed to marshal ping response", mlog.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		mlog.Error("Failed to write ping response", mlog.Err(err))
	}
}

// statusRecorder keeps the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestDuration(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		if s.Metrics != nil {
			elapsed := float64(time.Since(start)) / float64(time.Second)
			s.Metrics.ObserveHTTPRequestDuration(name, r.Method, strconv.Itoa(rec.status), elapsed)
		}
	}
}

func (s *Server) withRecovery(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if x := recover(); x != nil {
				mlog.Error("recovered from a panic",
					mlog.String("url", r.URL.String()),
					mlog.Any("error", x))
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()

		next(w, r)
	}
}
