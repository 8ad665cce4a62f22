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

type ContactHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewContactHandler(db *sql.DB, cfg cliparse.Config) *ContactHandler {
	return &ContactHandler{db: db, cfg: cfg}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := validate.Contact(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Attribution metadata, all best-effort
	utmSource := middleware.OptionalHeader(r, "X-UTM-Source")
	utmMedium := middleware.OptionalHeader(r, "X-UTM-Medium")
	utmCampaign := middleware.OptionalHeader(r, "X-UTM-Campaign")
	referer := middleware.OptionalHeader(r, "Referer")
	userAgent := middleware.OptionalHeader(r, "User-Agent")
	ip := middleware.ClientIP(r)

	_, err := h.db.Exec(`
		INSERT INTO contact_message (name, email, company, message, utm_source, utm_medium, utm_campaign, referer, user_agent, ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, req.Name, req.Email, nullIfEmpty(req.Company), req.Message,
		utmSource, utmMedium, utmCampaign, referer, userAgent, ip, time.Now())

	if err != nil {
		slog.Error("failed to insert contact message", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("contact message received", "email", req.Email)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// nullIfEmpty maps optional request fields to NULLable columns.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
