// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey-score API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	store := queries.NewStore(db.NewGateway(conn))
	mux := router.NewRouter(store)

The store is the only dependency, so tests can pass any handlers.Store.

# Endpoints

Health:

	GET /health

Users:

	POST /api/register            - Create user, returns uuid
	POST /api/login               - Look up user by email
	GET  /api/users/{uuid}        - User without internal id
	PUT  /api/users/{uuid}/scored - Set scored flag

Scores:

	POST /api/survey/submit        - Record a score for a user id
	GET  /api/scores/{userId}      - Latest score by user id
	GET  /api/scores/uuid/{uuid}   - Latest score by user uuid
	GET  /api/users/{uuid}/scores  - All scores, newest first

Survey responses:

	POST /api/survey/responses                      - Save an answer
	GET  /api/survey/responses/{userId}             - All answers by question
	GET  /api/survey/responses/{userId}/{questionId} - Latest answer

CORS is applied around the whole mux in main.
*/
package router
