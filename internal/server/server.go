// Package server exposes the note store over HTTP: list keys, get a blob,
// put a blob. No versioning, no conflict detection — last writer wins.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"

	"github.com/inkwell-md/inkwell/internal/store"
)

type Server struct {
	store  *store.Store
	logger *slog.Logger
}

func New(st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: st, logger: logger}
}

// Router wires the three file operations. The id pattern admits slashes so
// names like "notes/a.md" stay single keys.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/files", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/files/{id:.+}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/files/{id:.+}", s.handlePut).Methods(http.MethodPost)
	r.Use(s.logRequests)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		s.logger.Info("handled",
			"method", r.Method,
			"url", r.URL.String(),
			"status", m.Code,
			"duration", m.Duration,
			"bytes", m.Written,
		)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list files", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(names); err != nil {
		s.logger.Error("failed to encode file list", "err", err)
	}
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["id"]

	body, err := s.store.Get(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("failed to get file", "name", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, body)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["id"]

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := s.store.Put(r.Context(), name, string(raw)); err != nil {
		s.logger.Error("failed to put file", "name", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Echo the stored text back as confirmation.
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(raw)
}
