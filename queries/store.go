// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"errors"

	"github.com/danielhkuo/survey-score/db"
)

var (
	// ErrNotFound is returned when a lookup matched no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUser is returned when the email (or uuid) is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)

// Store bundles the query sets over one gateway.
type Store struct {
	*Users
	*Scores
	*Surveys
}

func NewStore(g *db.Gateway) *Store {
	return &Store{
		Users:   NewUsers(g),
		Scores:  NewScores(g),
		Surveys: NewSurveys(g),
	}
}

// notFound maps the gateway's absence marker to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, db.ErrNoRecord) {
		return ErrNotFound
	}
	return err
}
