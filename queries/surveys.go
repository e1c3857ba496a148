// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"time"

	"github.com/danielhkuo/survey-score/db"
	"github.com/danielhkuo/survey-score/models"
)

const responseColumns = `id, user_id, question_id, answer, created_at`

// Responses are append-only. Answering the same question twice keeps both
// rows; lookups by question return the latest.
type Surveys struct {
	g *db.Gateway
}

func NewSurveys(g *db.Gateway) *Surveys {
	return &Surveys{g: g}
}

func (s *Surveys) SaveSurveyResponse(ctx context.Context, resp models.NewSurveyResponse) error {
	_, err := s.g.Run(ctx, `
		INSERT INTO survey_responses (user_id, question_id, answer, created_at)
		VALUES ($1, $2, $3, $4)
	`, resp.UserID, resp.QuestionID, resp.Answer, time.Now().UTC())
	return err
}

// GetUserResponses returns the user's responses ordered by question id,
// then by insertion order.
func (s *Surveys) GetUserResponses(ctx context.Context, userID int64) ([]models.SurveyResponse, error) {
	return db.All(ctx, s.g, scanResponse, `
		SELECT `+responseColumns+`
		FROM survey_responses
		WHERE user_id = $1
		ORDER BY question_id, id
	`, userID)
}

func (s *Surveys) GetResponseByQuestion(ctx context.Context, userID int64, questionID int) (models.SurveyResponse, error) {
	resp, err := db.Get(ctx, s.g, scanResponse, `
		SELECT `+responseColumns+`
		FROM survey_responses
		WHERE user_id = $1 AND question_id = $2
		ORDER BY id DESC
		LIMIT 1
	`, userID, questionID)
	return resp, notFound(err)
}

func scanResponse(sc db.Scanner) (models.SurveyResponse, error) {
	var resp models.SurveyResponse
	err := sc.Scan(&resp.ID, &resp.UserID, &resp.QuestionID, &resp.Answer, &resp.CreatedAt)
	return resp, err
}
