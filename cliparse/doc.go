// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - JWTSecret: Secret for signing bearer tokens (required)
  - JWTExpiresIn: Token lifetime (default: 7d)
  - CORSOrigin: Frontend origin allowed by CORS (default: http://localhost:5173)
  - StrictAnswers: Check answers against the question catalog (default: false)
  - RateLimit, RateBurst: Per-IP request rate (default: 20 rps, burst 40; 0 disables)
  - LogLevel, LogFormat: slog level and handler (default: info, text)

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-jwt-secret       JWT signing secret
	-jwt-expires-in   Token lifetime
	-cors-origin      Allowed origin
	-strict-answers   Catalog validation
	-rate-limit       Requests per second
	-rate-burst       Burst size
	-log-level        Log level
	-log-format       Log format

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	JWT_SECRET     → -jwt-secret
	JWT_EXPIRES_IN → -jwt-expires-in
	CORS_ORIGIN    → -cors-origin
	STRICT_ANSWERS → -strict-answers
	RATE_LIMIT     → -rate-limit
	RATE_BURST     → -rate-burst
	LOG_LEVEL      → -log-level
	LOG_FORMAT     → -log-format

CLI flags take precedence over environment variables. main loads a .env
file into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - JWT_EXPIRES_IN must be seconds, Nd, or a Go duration
*/
package cliparse
