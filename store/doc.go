// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists users and survey answers.

Stores are built around an explicit connection and dialect; nothing is
global:

	responses := store.NewResponseStore(conn, db.Postgres)
	users := store.NewUserStore(conn, db.Postgres)

# Responses

ResponseStore is append-only. Each submission becomes a new row with a
store-assigned id and created_at; rows are never updated or deleted, so a
question answered twice has two rows and the reader decides which one is
current.

	Append(ctx, userID, surveyFormID, questionID, answer)  → AnswerEvent
	ListByUser(ctx, userID)                                → newest first, no answer text
	ListByUserAndSession(ctx, userID, surveyFormID)        → oldest first, full rows

Ties on created_at are broken by id. Every query is scoped to one user.

# Users

	Create(ctx, name, email, passwordHash, isAdmin) → ErrUserExists on duplicate email
	FindByEmail(ctx, email)                         → nil, nil when missing

Driver failures come back as apperr internal errors.
*/
package store
