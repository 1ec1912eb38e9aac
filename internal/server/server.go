// Package server exposes the dashboard snapshot, speed test control and admin actions
// over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"minirack-dashboard/internal/cache"
	"minirack-dashboard/internal/speedtest"
	"minirack-dashboard/internal/version"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 120 * time.Second
	shutdownTimeout     = 5 * time.Second
)

// Dashboard is the snapshot owner.
type Dashboard interface {
	GetSnapshot(ctx context.Context) cache.Snapshot
	Snapshot() cache.Snapshot
	Devices() []cache.DeviceView
}

type SpeedTester interface {
	Start() (string, error)
	Status() (bool, *speedtest.Result)
}

type SystemController interface {
	Restart(ctx context.Context) error
	Reboot(ctx context.Context) error
}

type Options struct {
	Addr      string
	Dashboard Dashboard
	SpeedTest SpeedTester
	System    SystemController
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// StaticDir serves the dashboard UI at / when set.
	StaticDir string
	Logger    zerolog.Logger
	Now       func() time.Time
}

type Server struct {
	opts   Options
	log    zerolog.Logger
	router *mux.Router
}

func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{opts: opts, log: opts.Logger, router: mux.NewRouter()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	api.HandleFunc("/devices", s.handleDevices).Methods(http.MethodGet)
	api.HandleFunc("/speedtest/start", s.handleSpeedTestStart).Methods(http.MethodPost)
	api.HandleFunc("/speedtest/status", s.handleSpeedTestStatus).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)
	api.HandleFunc("/system/restart", s.handleRestart).Methods(http.MethodPost)
	api.HandleFunc("/system/reboot", s.handleReboot).Methods(http.MethodPost)

	if s.opts.Metrics != nil {
		s.router.Handle("/metrics", s.opts.Metrics).Methods(http.MethodGet)
	}
	if s.opts.StaticDir != "" {
		s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.opts.StaticDir)))
	}
}

// Handler returns the routed handler wrapped in the common middleware.
func (s *Server) Handler() http.Handler {
	return s.logRequests(corsMiddleware(s.router))
}

// Run serves until ctx is done and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("Web server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error().Err(err).Msg("Web server shutdown error")
		}
	}()

	s.log.Info().Str("addr", s.opts.Addr).Msg("Web server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.opts.Dashboard.GetSnapshot(r.Context()))
}

type devicesResponse struct {
	Devices []cache.DeviceView `json:"devices"`
	Count   int                `json:"count"`
}

func (s *Server) handleDevices(w http.ResponseWriter, _ *http.Request) {
	devices := s.opts.Dashboard.Devices()
	if devices == nil {
		devices = []cache.DeviceView{}
	}
	s.writeJSON(w, http.StatusOK, devicesResponse{Devices: devices, Count: len(devices)})
}

type statusResponse struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleSpeedTestStart(w http.ResponseWriter, _ *http.Request) {
	id, err := s.opts.SpeedTest.Start()
	if errors.Is(err, speedtest.ErrRunning) {
		s.writeJSON(w, http.StatusConflict, statusResponse{Status: "running"})
		return
	}
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "started", ID: id})
}

type speedTestStatusResponse struct {
	Running bool              `json:"running"`
	Result  *speedtest.Result `json:"result"`
}

func (s *Server) handleSpeedTestStatus(w http.ResponseWriter, _ *http.Request) {
	running, result := s.opts.SpeedTest.Status()
	s.writeJSON(w, http.StatusOK, speedTestStatusResponse{Running: running, Result: result})
}

type healthResponse struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	TokenExpired bool      `json:"token_expired"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Timestamp:    s.opts.Now(),
		TokenExpired: s.opts.Dashboard.Snapshot().TokenExpired,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, version.Get())
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.runSystemAction(w, r, "restart", s.opts.System.Restart)
}

func (s *Server) handleReboot(w http.ResponseWriter, r *http.Request) {
	s.runSystemAction(w, r, "reboot", s.opts.System.Reboot)
}

func (s *Server) runSystemAction(w http.ResponseWriter, r *http.Request, name string, action func(context.Context) error) {
	if err := action(r.Context()); err != nil {
		s.log.Error().Err(err).Str("action", name).Msg("System action failed")
		s.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: err.Error()})
		return
	}
	s.log.Warn().Str("action", name).Msg("System action started")
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

// writeJSON encodes before writing the header so an encoding failure turns into
// a 500 instead of an empty 200.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		s.log.Error().Err(err).Msg("Error encoding response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.log.Debug().Err(err).Msg("Error writing response")
	}
}
