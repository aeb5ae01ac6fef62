// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Dialects

Two drivers are supported, selected by DATABASE_TYPE:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

Open connects and pings:

	conn, err := db.Open(db.Postgres, cfg.DatabaseURL)

Queries are written with ? placeholders; Dialect.Rebind turns them into
$1, $2, ... for postgres.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: accounts (email unique, bcrypt password hash)
  - survey_responses: one row per submitted answer, never updated

# Relationships

	users 1──* survey_responses

# Indexes

  - survey_responses.(user_id, created_at)
  - survey_responses.(user_id, survey_form_id, created_at)
*/
package db
