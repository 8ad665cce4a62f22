// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate contains the per-endpoint input checks.

Each function takes a parsed request and returns nil or a sentinel error
whose message is exactly what the handler sends back in the 400 body:

	if err := validate.Contact(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

Validation is presence-only: any non-empty string passes. In particular
there is no email format check - that is deliberate, matching the product's
shallow-validation stance. A request that fails validation never reaches
the database.
*/
package validate
