package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"i4.energy/across/bldccli/cli"
)

// Server exposes read-only operational endpoints for the CLI daemon. It
// never touches the line editor or the terminal.
type Server struct {
	Logger   *slog.Logger
	Registry *cli.Registry
	Queue    *cli.Queue
	Gatherer prometheus.Gatherer
}

// ServeHTTP implements the http.Handler interface for the Server struct
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /commands", s.handleCommands)
	if s.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	mux.ServeHTTP(w, r)
}

func (s *Server) sendJSON(w http.ResponseWriter, v any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Warn("Failed to encode response", "error", err)
	}
}

// handleHealth reports liveness and how full the motor command queue is
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	type HealthResponse struct {
		Status        string `json:"status"`
		QueueDepth    int    `json:"queue_depth"`
		QueueCapacity int    `json:"queue_capacity"`
	}

	resp := HealthResponse{Status: "ok"}
	if s.Queue != nil {
		resp.QueueDepth = s.Queue.Len()
		resp.QueueCapacity = s.Queue.Cap()
	}
	s.sendJSON(w, resp, http.StatusOK)
}

// handleCommands lists the registered commands
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	type Command struct {
		Name   string `json:"name"`
		Help   string `json:"help"`
		Params int    `json:"params"`
	}

	if s.Registry == nil {
		s.sendJSON(w, []Command{}, http.StatusOK)
		return
	}

	descs := s.Registry.Commands()
	resp := make([]Command, 0, len(descs))
	for _, d := range descs {
		resp = append(resp, Command{Name: d.Name, Help: d.Help, Params: d.Params})
	}
	s.sendJSON(w, resp, http.StatusOK)
}
