// Package server implements the listing server the dashboard reads from.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/gorilla/mux"
)

const (
	apiCacheControl    = "no-store, no-cache, must-revalidate, max-age=0"
	staticCacheControl = "max-age=3600"
	shutdownTimeout    = 5 * time.Second
)

// Lister is the catalog view the server needs.
type Lister interface {
	Names(ctx context.Context, section media.Section) (media.FileList, error)
	Dir(section media.Section) string
}

// Server answers the listing endpoints and serves the files.
type Server struct {
	lister  Lister
	webRoot string
	logger  logging.Logger
}

// New returns a server over lister. webRoot holds index.html.
func New(lister Lister, webRoot string, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{lister: lister, webRoot: webRoot, logger: logger}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestID, cors, s.accessLog)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(cacheControl(apiCacheControl))
	for _, section := range media.Sections {
		h := s.listHandler(section)
		api.HandleFunc("/"+string(section), h).Methods(http.MethodGet, http.MethodHead)
		api.HandleFunc("/"+string(section)+"/", h).Methods(http.MethodGet, http.MethodHead)
	}

	for _, section := range media.Sections {
		prefix := section.Prefix()
		files := http.StripPrefix(prefix, http.FileServer(http.Dir(s.lister.Dir(section))))
		r.PathPrefix(prefix).Handler(cacheControl(staticCacheControl)(files))
	}

	r.HandleFunc("/", s.index).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/index.html", s.index).Methods(http.MethodGet, http.MethodHead)
	r.PathPrefix("/").Handler(cacheControl(staticCacheControl)(http.FileServer(http.Dir(s.webRoot))))
	return r
}

func (s *Server) listHandler(section media.Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := s.lister.Names(r.Context(), section)
		if err != nil {
			s.logger.Error("listing failed", "section", string(section), "error", err.Error(),
				"request_id", RequestIDFrom(r.Context()))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if names == nil {
			names = media.FileList{}
		}
		writeJSON(w, http.StatusOK, names)
	}
}

// index serves index.html without the redirect http.ServeFile applies to it.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(filepath.Join(s.webRoot, "index.html"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", staticCacheControl)
	http.ServeContent(w, r, "index.html", info.ModTime(), f)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Debug("failed to write response", "error", err.Error())
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listing server started", "addr", addr, "pid", os.Getpid())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("listing server stopped", "addr", addr)
	return nil
}
