// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/landing/cliparse"
	"github.com/danielhkuo/landing/lifecycle"
	"github.com/danielhkuo/landing/middleware"
	"github.com/danielhkuo/landing/models"
	"github.com/danielhkuo/landing/validate"
)

type SubscriptionHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	manager *lifecycle.Manager
}

func NewSubscriptionHandler(db *sql.DB, cfg cliparse.Config) *SubscriptionHandler {
	return &SubscriptionHandler{db: db, cfg: cfg, manager: lifecycle.NewManager(db)}
}

// Subscribe handles POST /api/subscribe
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email")
		return
	}

	if err := validate.Subscribe(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.manager.Subscribe(req.Email)
	if err != nil {
		slog.Error("failed to upsert subscriber", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	// TODO: send confirmation email with /api/confirm?token=...
	slog.Info("subscriber pending", "subscriber_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SubscribeResponse{OK: true, ID: id})
}

// Confirm handles GET /api/confirm
func (h *SubscriptionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if err := validate.ConfirmToken(token); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.manager.Confirm(token)
	if errors.Is(err, lifecycle.ErrTokenNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("failed to confirm subscriber", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("subscriber confirmed")

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
