// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Subscriber status constants
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
)

// Request types

type SubscribeRequest struct {
	Email string `json:"email"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

type EventRequest struct {
	SessionID string `json:"session_id"`
	EventName string `json:"event_name"`
	Path      string `json:"path"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type SubscribeResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// Domain types

type Subscriber struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	Token       *string    `json:"-"` // Never expose in JSON
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ContactMessage struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     *string   `json:"company,omitempty"`
	Message     string    `json:"message"`
	UTMSource   *string   `json:"utm_source,omitempty"`
	UTMMedium   *string   `json:"utm_medium,omitempty"`
	UTMCampaign *string   `json:"utm_campaign,omitempty"`
	Referer     *string   `json:"referer,omitempty"`
	UserAgent   *string   `json:"user_agent,omitempty"`
	IP          *string   `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"created_at"`
}

type EventLog struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	EventName string    `json:"event_name"`
	Path      *string   `json:"path,omitempty"`
	UserAgent *string   `json:"user_agent,omitempty"`
	IP        *string   `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
