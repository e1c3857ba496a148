// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: fullName, email, company, role
  - LoginRequest: email
  - SubmitScoreRequest: userId, score
  - SaveResponseRequest: userId, questionId, answer
  - UpdateScoredRequest: scored

Body fields are pointers. A field missing from the JSON stays nil and is
stored as NULL, so the schema's NOT NULL and UNIQUE constraints see the
absence instead of a zero value.

# Response Types

  - RegisterResponse: message, uuid
  - LoginResponse: message, user
  - MessageResponse: message
  - ErrorResponse: message

# Domain Types

  - User: a registered user. Public() drops the internal id. Text fields
    may be NULL and encode as JSON null.
  - NewUser, NewScore, NewSurveyResponse: insert arguments
  - Score: an integer score recorded for a user
  - SurveyResponse: one answer to one survey question

JSON field names are camelCase; database columns are snake_case.
*/
package models
