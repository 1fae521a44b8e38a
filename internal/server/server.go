// Package server provides the HTTP server setup for go-docstudio.
//
// NewServer creates and configures the HTTP server, the artifact store
// and the retention scheduler.
//
// Configuration (environment, loaded via godotenv autoload):
//   - PORT: listen port (default 8080)
//   - STORAGE_DIR: artifact store root (default "data")
//   - RETENTION_SECONDS: generated artifact lifetime (default 300)
//
// Usage:
//
//	httpServer, srv, err := server.NewServer()
//	httpServer.ListenAndServe()
//
// See internal/server/routes.go for route registration.
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"go-docstudio/internal/retention"
	"go-docstudio/internal/storage"

	_ "github.com/joho/godotenv/autoload"
)

const defaultRetention = 300 * time.Second

type Server struct {
	port      int
	Store     *storage.Store
	Retention *retention.Scheduler
	Window    time.Duration
}

func NewServer() (*http.Server, *Server, error) {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}
	root := os.Getenv("STORAGE_DIR")
	if root == "" {
		root = "data"
	}
	window := defaultRetention
	if v := os.Getenv("RETENTION_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			window = time.Duration(n) * time.Second
		}
	}

	store, err := storage.New(root)
	if err != nil {
		return nil, nil, err
	}

	srv := &Server{
		port:      port,
		Store:     store,
		Retention: retention.NewScheduler(),
		Window:    window,
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", srv.port),
		Handler:      srv.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	return httpServer, srv, nil
}

// Cleanup cancels pending deletions and sweeps both storage zones.
// Called on graceful shutdown; the sweep covers everything the
// scheduler would have deleted later.
func (s *Server) Cleanup() {
	s.Retention.Stop()
	s.Store.Sweep()
}
