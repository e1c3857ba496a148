// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey-score API.

# Handler Types

Each handler is a struct holding the Store:

  - UserHandler: registration, login, user lookup, scored flag
  - ScoreHandler: score submission and lookup
  - SurveyHandler: survey answers

Handlers are created via constructor functions that accept a Store:

	userHandler := handlers.NewUserHandler(store)

*queries.Store is the production Store; tests may pass any implementation.

# Status Mapping

  - queries.ErrNotFound → 404 (401 for login)
  - malformed JSON or non-numeric path ids → 400
  - any other error → 500 with a fixed message; the error is logged, never
    returned to the client

# Scores

A user can have many scores. GET /api/scores/{userId} and
GET /api/scores/uuid/{uuid} return the latest; GET /api/users/{uuid}/scores
returns them all, newest first.

# Survey Responses

Answers are append-only. Answering a question again adds a row; the
single-question lookup returns the latest answer and the list returns all
answers ordered by question id.
*/
package handlers
