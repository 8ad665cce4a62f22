// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/landing/cliparse"
	"github.com/danielhkuo/landing/middleware"
	"github.com/danielhkuo/landing/models"
	"github.com/danielhkuo/landing/validate"
)

type EventsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewEventsHandler(db *sql.DB, cfg cliparse.Config) *EventsHandler {
	return &EventsHandler{db: db, cfg: cfg}
}

// Log handles POST /api/events
func (h *EventsHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req models.EventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing fields")
		return
	}

	if err := validate.Event(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	userAgent := middleware.OptionalHeader(r, "User-Agent")
	ip := middleware.ClientIP(r)

	_, err := h.db.Exec(`
		INSERT INTO event_log (session_id, event_name, path, user_agent, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, req.SessionID, req.EventName, nullIfEmpty(req.Path), userAgent, ip, time.Now())

	if err != nil {
		slog.Error("failed to insert event", "error", err, "event_name", req.EventName)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
