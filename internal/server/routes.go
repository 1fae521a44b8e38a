// Package server sets up the HTTP server and registers the document
// manipulation API routes.
//
// RegisterRoutes returns an http.Handler with all endpoints under /api.
// CORS and logging middleware are enabled; swagger is served to
// localhost only.
package server

import (
	"net"
	"net/http"

	_ "go-docstudio/docs"
	"go-docstudio/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Only allow requests from localhost to /swagger/*
func localhostOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, _ := net.SplitHostPort(r.RemoteAddr)
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.With(localhostOnly).Get("/swagger/*", httpSwagger.WrapHandler)

	h := handlers.NewAPIHandler(s.Store, s.Retention, s.Window)
	r.Get("/", h.Root)
	r.Route("/api", func(api chi.Router) {
		api.Get("/health", h.Health)
		api.Post("/merge", h.MergePDFs)
		api.Post("/split", h.SplitPDF)
		api.Post("/compress", h.CompressPDF)
		api.Post("/rotate", h.RotatePDF)
		api.Post("/pdf-to-images", h.PDFToImages)
		api.Post("/images-to-pdf", h.ImagesToPDF)
		api.Post("/protect", h.ProtectPDF)
		api.Post("/unlock", h.UnlockPDF)
		api.Post("/watermark", h.AddWatermark)
		api.Post("/add-page-numbers", h.AddPageNumbers)
		api.Post("/extract-text", h.ExtractText)
		api.Post("/get-metadata", h.GetMetadata)
	})

	return r
}
