// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/survey-score/models"
)

// Store is the domain query layer the handlers depend on.
// *queries.Store satisfies it.
type Store interface {
	CreateUser(ctx context.Context, user models.NewUser) (string, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByUUID(ctx context.Context, uuid string) (models.User, error)
	UpdateScored(ctx context.Context, uuid string, scored bool) error

	CreateScore(ctx context.Context, score models.NewScore) error
	GetScoreByUserID(ctx context.Context, userID int64) (models.Score, error)
	GetScoreByUserUUID(ctx context.Context, uuid string) (models.Score, error)
	ListScoresByUserUUID(ctx context.Context, uuid string) ([]models.Score, error)

	SaveSurveyResponse(ctx context.Context, resp models.NewSurveyResponse) error
	GetUserResponses(ctx context.Context, userID int64) ([]models.SurveyResponse, error)
	GetResponseByQuestion(ctx context.Context, userID int64, questionID int) (models.SurveyResponse, error)
}

// pathInt64 parses a numeric path parameter
func pathInt64(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
