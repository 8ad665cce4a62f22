// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/health", middleware.WithLogging(handler))

Logs request start (method, path, remote, body size) and completion
(duration_ms). Each request gets a random request_id correlating the two
log lines.

# CORS Middleware

Enable cross-origin requests for the configured frontend origin:

	server := http.Server{
		Handler: middleware.CORS(mux, cfg.CORSOrigin),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, X-UTM-Source,
X-UTM-Medium, X-UTM-Campaign.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email")

ErrorResponse produces the uniform error wire shape {"error": message}.

Parse JSON request bodies:

	var req models.SubscribeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid email")
		return
	}

# Request Metadata

Best-effort extraction of optional request metadata, nil when absent:

	ip := middleware.ClientIP(r)
	ref := middleware.OptionalHeader(r, "Referer")

ClientIP is a prioritized lookup: first X-Forwarded-For entry, then the
transport peer address, then nil. Used for contact and event attribution.
*/
package middleware
