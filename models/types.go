package models

import "time"

// Request types
//
// Body fields are pointers so an omitted field stays nil and is bound as
// SQL NULL instead of a zero value.

type RegisterRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Role     *string `json:"role"`
}

type LoginRequest struct {
	Email *string `json:"email"`
}

type SubmitScoreRequest struct {
	UserID *int64 `json:"userId"`
	Score  *int   `json:"score"`
}

type SaveResponseRequest struct {
	UserID     *int64  `json:"userId"`
	QuestionID *int    `json:"questionId"`
	Answer     *string `json:"answer"`
}

type UpdateScoredRequest struct {
	Scored bool `json:"scored"`
}

// Response types

type RegisterResponse struct {
	Message string `json:"message"`
	UUID    string `json:"uuid"`
}

type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	FullName    *string   `json:"fullName"`
	Email       *string   `json:"email"`
	Company     *string   `json:"company"`
	Role        *string   `json:"role"`
	Scored      bool      `json:"scored"`
	CreatedDate time.Time `json:"createdDate"`
}

// PublicUser is a User without the internal numeric id
type PublicUser struct {
	UUID        string    `json:"uuid"`
	FullName    *string   `json:"fullName"`
	Email       *string   `json:"email"`
	Company     *string   `json:"company"`
	Role        *string   `json:"role"`
	Scored      bool      `json:"scored"`
	CreatedDate time.Time `json:"createdDate"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		UUID:        u.UUID,
		FullName:    u.FullName,
		Email:       u.Email,
		Company:     u.Company,
		Role:        u.Role,
		Scored:      u.Scored,
		CreatedDate: u.CreatedDate,
	}
}

// NewUser holds the caller-supplied fields of a registration
type NewUser struct {
	FullName *string
	Email    *string
	Company  *string
	Role     *string
}

// NewScore holds the fields of a score submission
type NewScore struct {
	UserID *int64
	Score  *int
}

type NewSurveyResponse struct {
	UserID     *int64
	QuestionID *int
	Answer     *string
}

type Score struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

type SurveyResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	QuestionID int       `json:"questionId"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Error response

type ErrorResponse struct {
	Message string `json:"message"`
}
