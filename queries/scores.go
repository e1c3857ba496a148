// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"time"

	"github.com/danielhkuo/survey-score/db"
	"github.com/danielhkuo/survey-score/models"
)

// A user may hold many scores. The single-score lookups return the most
// recently inserted one; ListScoresByUserUUID returns them all.
type Scores struct {
	g *db.Gateway
}

func NewScores(g *db.Gateway) *Scores {
	return &Scores{g: g}
}

// CreateScore does not check that the user exists. Whether an orphan is
// rejected depends on foreign key enforcement in the database. Nil fields
// are bound as NULL and fail the NOT NULL constraints.
func (s *Scores) CreateScore(ctx context.Context, score models.NewScore) error {
	_, err := s.g.Run(ctx, `
		INSERT INTO scores (user_id, score, created_at)
		VALUES ($1, $2, $3)
	`, score.UserID, score.Score, time.Now().UTC())
	return err
}

func (s *Scores) GetScoreByUserID(ctx context.Context, userID int64) (models.Score, error) {
	score, err := db.Get(ctx, s.g, scanScore, `
		SELECT id, user_id, score, created_at
		FROM scores
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, userID)
	return score, notFound(err)
}

func (s *Scores) GetScoreByUserUUID(ctx context.Context, userUUID string) (models.Score, error) {
	score, err := db.Get(ctx, s.g, scanScore, `
		SELECT s.id, s.user_id, s.score, s.created_at
		FROM scores s
		JOIN users u ON u.id = s.user_id
		WHERE u.uuid = $1
		ORDER BY s.id DESC
		LIMIT 1
	`, userUUID)
	return score, notFound(err)
}

// ListScoresByUserUUID returns every score of the user, newest first.
func (s *Scores) ListScoresByUserUUID(ctx context.Context, userUUID string) ([]models.Score, error) {
	return db.All(ctx, s.g, scanScore, `
		SELECT s.id, s.user_id, s.score, s.created_at
		FROM scores s
		JOIN users u ON u.id = s.user_id
		WHERE u.uuid = $1
		ORDER BY s.id DESC
	`, userUUID)
}

func scanScore(sc db.Scanner) (models.Score, error) {
	var score models.Score
	err := sc.Scan(&score.ID, &score.UserID, &score.Score, &score.CreatedAt)
	return score, err
}
