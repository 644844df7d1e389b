// Package httpapi exposes the note-taking service as a JSON HTTP API.
// Routes, status codes and response envelopes follow the public contract:
// every response body carries at least {error, message}.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/akosarev/notekeeper/internal/logging"
	"github.com/akosarev/notekeeper/internal/server/notes"
	"github.com/akosarev/notekeeper/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	notes     *notes.Service
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *users.Service, ns *notes.Service, secretKey string) (*Server, error) {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		notes:     ns,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// the original frontend is served from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(s.logRequests)

	r.Get("/", s.handleRoot)
	r.Post("/create-account", s.handleCreateAccount)
	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/add-note", s.handleAddNote)
		r.Put("/edit-note/{noteId}", s.handleEditNote)
		r.Get("/get-all-note", s.handleGetAllNotes)
		r.Delete("/delete-note/{noteId}", s.handleDeleteNote)
		r.Put("/update-note-pinned/{noteId}", s.handleUpdateNotePinned)
		r.Get("/get-user", s.handleGetUser)
		r.Get("/search-notes", s.handleSearchNotes)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"data": "Hello"})
}
