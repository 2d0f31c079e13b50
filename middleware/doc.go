// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/summary/bills", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request id comes from X-Request-ID when the
caller sends one, otherwise a UUID is generated. It is echoed back in the
X-Request-ID response header.

# CORS Middleware

Enable cross-origin reads for a separately hosted frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET and OPTIONS only; the API is read-only.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusServiceUnavailable, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
