// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Waterlily API server.

Waterlily collects answers to a long-term care planning questionnaire. Each
answer is stored as its own row; sessions, counts and "current" answers are
derived from those rows when they are read.

# Starting the Server

Configuration comes from flags, then environment variables, then a .env
file in the working directory:

	DATABASE_URL=waterlily.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 3000 -t postgres -d "postgres://..." -jwt-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path/DSN or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): HS256 signing secret

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - JWT_EXPIRES_IN (-jwt-expires-in): token lifetime (default: 7d)
  - CORS_ORIGIN (-cors-origin): frontend origin (default: http://localhost:5173)
  - STRICT_ANSWERS (-strict-answers): check answers against the catalog
  - RATE_LIMIT / RATE_BURST: per-IP requests per second and burst (0 disables)
  - LOG_LEVEL / LOG_FORMAT: debug|info|warn|error and text|json

# Architecture

  - handlers: HTTP request handlers (auth, survey responses, questions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, bearer auth, CORS, rate limiting, JSON helpers
  - survey: session grouping, latest-answer resolution, question catalog
  - store: append-only answer rows and users
  - auth: password hashing and tokens
  - apperr: error kinds and their HTTP status
  - models: Request/response types
  - db: Dialects, connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
