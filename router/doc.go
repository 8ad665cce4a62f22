// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the landing API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

All API paths are prefixed /api:

	GET  /api/health    - Health check
	POST /api/subscribe - Newsletter opt-in (issues confirmation token)
	GET  /api/confirm   - Consume a confirmation token
	POST /api/contact   - Contact form submission
	POST /api/events    - Client analytics event

Every other path serves the static SPA bundle from the configured public
directory, falling back to index.html for client-side routes. With no public
directory configured, the root answers with a plain API banner instead.

# Handler Initialization

The router creates handler instances with dependency injection:

	subscriptionHandler := handlers.NewSubscriptionHandler(db, cfg)
	contactHandler := handlers.NewContactHandler(db, cfg)
	eventsHandler := handlers.NewEventsHandler(db, cfg)

All handlers receive the database connection and configuration. CORS is
applied around the whole mux in main, not per route.
*/
package router
