// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/survey-score/db"
	"github.com/danielhkuo/survey-score/models"
)

const userColumns = `id, uuid, full_name, email, company, role, scored, created_date`

type Users struct {
	g *db.Gateway
}

func NewUsers(g *db.Gateway) *Users {
	return &Users{g: g}
}

// CreateUser inserts a user under a fresh random uuid and returns it.
// Email uniqueness is left to the schema. Nil fields are stored as NULL, and
// any number of users may have a NULL email.
func (u *Users) CreateUser(ctx context.Context, user models.NewUser) (string, error) {
	id := uuid.NewString()

	_, err := u.g.Run(ctx, `
		INSERT INTO users (uuid, full_name, email, company, role, created_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, user.FullName, user.Email, user.Company, user.Role, time.Now().UTC())
	if err != nil {
		if db.IsUniqueViolation(err) {
			return "", fmt.Errorf("%w: %w", ErrDuplicateUser, err)
		}
		return "", err
	}

	return id, nil
}

func (u *Users) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := db.Get(ctx, u.g, scanUser, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	return user, notFound(err)
}

func (u *Users) GetUserByUUID(ctx context.Context, userUUID string) (models.User, error) {
	user, err := db.Get(ctx, u.g, scanUser, `
		SELECT `+userColumns+`
		FROM users
		WHERE uuid = $1
	`, userUUID)
	return user, notFound(err)
}

// UpdateScored sets the scored flag. An unknown uuid updates nothing and is
// not an error.
func (u *Users) UpdateScored(ctx context.Context, userUUID string, scored bool) error {
	_, err := u.g.Run(ctx, `
		UPDATE users SET scored = $1 WHERE uuid = $2
	`, scored, userUUID)
	return err
}

func scanUser(s db.Scanner) (models.User, error) {
	var user models.User
	err := s.Scan(
		&user.ID,
		&user.UUID,
		&user.FullName,
		&user.Email,
		&user.Company,
		&user.Role,
		&user.Scored,
		&user.CreatedDate,
	)
	return user, err
}
