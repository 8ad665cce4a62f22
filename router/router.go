// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/landing/cliparse"
	"github.com/danielhkuo/landing/handlers"
	"github.com/danielhkuo/landing/middleware"
	"github.com/danielhkuo/landing/models"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	subscriptionHandler := handlers.NewSubscriptionHandler(db, cfg)
	contactHandler := handlers.NewContactHandler(db, cfg)
	eventsHandler := handlers.NewEventsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
	})

	// Newsletter subscription lifecycle
	mux.HandleFunc("POST /api/subscribe", middleware.WithLogging(subscriptionHandler.Subscribe))
	mux.HandleFunc("GET /api/confirm", middleware.WithLogging(subscriptionHandler.Confirm))

	// Contact form
	mux.HandleFunc("POST /api/contact", middleware.WithLogging(contactHandler.Submit))

	// Analytics events
	mux.HandleFunc("POST /api/events", middleware.WithLogging(eventsHandler.Log))

	// Everything else is the SPA bundle; client-side routes fall back to
	// index.html. Without a public dir the server is API-only.
	if cfg.PublicDir != "" {
		mux.Handle("/", NewSPA(cfg.PublicDir))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("landing API v1"))
		})
	}

	return mux
}
