// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/questions", middleware.WithLogging(handler))

Each request gets an id, taken from X-Request-ID when the client sent one
and generated otherwise. The id is echoed back in the response header and
logged with the start and completion lines (method, path, status,
duration_ms). Handlers read it with RequestID(ctx).

# Authentication

Protect a handler with a bearer token:

	mux.HandleFunc("GET /api/auth/me",
		middleware.WithLogging(middleware.Authenticate(issuer, handler)))

Missing, malformed, expired and forged tokens all get the same 401 body and
the wrapped handler never runs. The verified identity is available through
IdentityFromContext.

# CORS and Rate Limiting

Both wrap the whole mux:

	handler := middleware.NewRateLimiter(float64(cfg.RateLimit), cfg.RateBurst).Middleware(mux)
	handler = middleware.CORS(cfg.CORSOrigin)(handler)

CORS only answers the configured origin, with credentials allowed.
The rate limiter keeps one token bucket per client IP and answers 429 when
it runs dry.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.WriteError(w, r, err) // status and message from apperr

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
