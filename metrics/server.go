// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"sort"
	"time"

	"github.com/gorilla/mux"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const (
	serverReadTimeout     = 30 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverShutdownTimeout = 30 * time.Second

	pprofPrefix = "/debug/pprof/"
)

// Handler is an endpoint of the metrics server.
type Handler struct {
	Handler     http.Handler
	Path        string
	Description string
}

// ServerOptions configures the metrics server.
type ServerOptions struct {
	// Port to listen on. "0" picks a free one.
	Port string
	// EnableProfiling mounts net/http/pprof under /debug/pprof/.
	EnableProfiling bool
}

// Server exposes the prometheus registry and, optionally, the runtime
// profiles on a port separate from the webhook listener.
type Server struct {
	opts     ServerOptions
	router   *mux.Router
	handlers map[string]Handler

	server   *http.Server
	listener net.Listener
}

func NewServer(opts ServerOptions, handlers ...Handler) *Server {
	s := &Server{
		opts:     opts,
		router:   mux.NewRouter(),
		handlers: map[string]Handler{},
	}
	for _, h := range handlers {
		s.Register(h)
	}
	if opts.EnableProfiling {
		s.registerProfiling()
	}
	s.router.HandleFunc("/", s.index).Methods(http.MethodGet)
	return s
}

// Register mounts h. Registering a path twice replaces the handler listed
// on the index; mux keeps serving the first one.
func (s *Server) Register(h Handler) {
	s.handlers[h.Path] = h
	s.router.Handle(h.Path, h.Handler)
}

func (s *Server) registerProfiling() {
	s.Register(Handler{Path: pprofPrefix + "cmdline", Description: "command line", Handler: http.HandlerFunc(pprof.Cmdline)})
	s.Register(Handler{Path: pprofPrefix + "profile", Description: "CPU profile", Handler: http.HandlerFunc(pprof.Profile)})
	s.Register(Handler{Path: pprofPrefix + "symbol", Description: "symbol lookup", Handler: http.HandlerFunc(pprof.Symbol)})
	s.Register(Handler{Path: pprofPrefix + "trace", Description: "execution trace", Handler: http.HandlerFunc(pprof.Trace)})

	// pprof.Index also serves the named profiles (heap, goroutine, block...).
	s.handlers[pprofPrefix] = Handler{Path: pprofPrefix, Description: "profiles"}
	s.router.PathPrefix(pprofPrefix).HandlerFunc(pprof.Index)
}

// Start binds the port and serves in the background. A port that cannot be
// bound is reported to the caller.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", ":"+s.opts.Port)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on metrics port %s", s.opts.Port)
	}
	s.listener = listener
	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
	}

	mlog.Info("Metrics server listening",
		mlog.String("address", listener.Addr().String()),
		mlog.Bool("profiling", s.opts.EnableProfiling))
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			mlog.Error("Metrics server stopped unexpectedly", mlog.Err(err))
		}
	}()
	return nil
}

// Addr is the bound address, once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) Stop() {
	if s.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		mlog.Error("Unable to shut the metrics server down", mlog.Err(err))
		return
	}
	mlog.Info("Metrics server stopped")
}

// index lists the mounted endpoints, one per line.
func (s *Server) index(w http.ResponseWriter, _ *http.Request) {
	paths := make([]string, 0, len(s.handlers))
	for path := range s.handlers {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, path := range paths {
		if _, err := fmt.Fprintf(w, "%-28s %s\n", path, s.handlers[path].Description); err != nil {
			mlog.Warn("Unable to write metrics index", mlog.Err(err))
			return
		}
	}
}
