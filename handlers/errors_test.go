// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/survey-score/models"
	"github.com/danielhkuo/survey-score/testutil"
)

var errStorage = errors.New("disk I/O error: secret detail")

// failingStore fails every call with errStorage
type failingStore struct{}

func (failingStore) CreateUser(context.Context, models.NewUser) (string, error) {
	return "", errStorage
}
func (failingStore) GetUserByEmail(context.Context, string) (models.User, error) {
	return models.User{}, errStorage
}
func (failingStore) GetUserByUUID(context.Context, string) (models.User, error) {
	return models.User{}, errStorage
}
func (failingStore) UpdateScored(context.Context, string, bool) error { return errStorage }
func (failingStore) CreateScore(context.Context, models.NewScore) error { return errStorage }
func (failingStore) GetScoreByUserID(context.Context, int64) (models.Score, error) {
	return models.Score{}, errStorage
}
func (failingStore) GetScoreByUserUUID(context.Context, string) (models.Score, error) {
	return models.Score{}, errStorage
}
func (failingStore) ListScoresByUserUUID(context.Context, string) ([]models.Score, error) {
	return nil, errStorage
}
func (failingStore) SaveSurveyResponse(context.Context, models.NewSurveyResponse) error {
	return errStorage
}
func (failingStore) GetUserResponses(context.Context, int64) ([]models.SurveyResponse, error) {
	return nil, errStorage
}
func (failingStore) GetResponseByQuestion(context.Context, int64, int) (models.SurveyResponse, error) {
	return models.SurveyResponse{}, errStorage
}

// TestStorageFaultsMapTo500 checks every handler maps a storage fault to a
// generic 500 without leaking the error text
func TestStorageFaultsMapTo500(t *testing.T) {
	var store failingStore
	users := NewUserHandler(store)
	scores := NewScoreHandler(store)
	surveys := NewSurveyHandler(store)

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		req         *http.Request
		pathValues  map[string]string
		expectedMsg string
	}{
		{
			name:        "register",
			handler:     users.Register,
			req:         testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{Email: testutil.Ptr("a@b.c")}),
			expectedMsg: "Error creating user",
		},
		{
			name:        "login",
			handler:     users.Login,
			req:         testutil.MakeRequest("POST", "/api/login", models.LoginRequest{Email: testutil.Ptr("a@b.c")}),
			expectedMsg: "Error logging in",
		},
		{
			name:        "get user",
			handler:     users.GetUser,
			req:         testutil.MakeRequest("GET", "/api/users/u", nil),
			pathValues:  map[string]string{"uuid": "u"},
			expectedMsg: "Error retrieving user",
		},
		{
			name:        "update scored",
			handler:     users.UpdateScored,
			req:         testutil.MakeRequest("PUT", "/api/users/u/scored", models.UpdateScoredRequest{Scored: true}),
			pathValues:  map[string]string{"uuid": "u"},
			expectedMsg: "Error updating user",
		},
		{
			name:        "submit score",
			handler:     scores.Submit,
			req:         testutil.MakeRequest("POST", "/api/survey/submit", models.SubmitScoreRequest{UserID: testutil.Ptr[int64](1), Score: testutil.Ptr(1)}),
			expectedMsg: "Error creating score",
		},
		{
			name:        "score by id",
			handler:     scores.GetByUserID,
			req:         testutil.MakeRequest("GET", "/api/scores/1", nil),
			pathValues:  map[string]string{"userId": "1"},
			expectedMsg: "Error retrieving scores",
		},
		{
			name:        "score by uuid",
			handler:     scores.GetByUserUUID,
			req:         testutil.MakeRequest("GET", "/api/scores/uuid/u", nil),
			pathValues:  map[string]string{"uuid": "u"},
			expectedMsg: "Error retrieving scores",
		},
		{
			name:        "score history",
			handler:     scores.History,
			req:         testutil.MakeRequest("GET", "/api/users/u/scores", nil),
			pathValues:  map[string]string{"uuid": "u"},
			expectedMsg: "Error retrieving scores",
		},
		{
			name:        "save response",
			handler:     surveys.SaveResponse,
			req:         testutil.MakeRequest("POST", "/api/survey/responses", models.SaveResponseRequest{UserID: testutil.Ptr[int64](1), QuestionID: testutil.Ptr(1), Answer: testutil.Ptr("a")}),
			expectedMsg: "Error saving response",
		},
		{
			name:        "list responses",
			handler:     surveys.GetResponses,
			req:         testutil.MakeRequest("GET", "/api/survey/responses/1", nil),
			pathValues:  map[string]string{"userId": "1"},
			expectedMsg: "Error retrieving responses",
		},
		{
			name:        "get response",
			handler:     surveys.GetResponse,
			req:         testutil.MakeRequest("GET", "/api/survey/responses/1/1", nil),
			pathValues:  map[string]string{"userId": "1", "questionId": "1"},
			expectedMsg: "Error retrieving response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.pathValues {
				tt.req.SetPathValue(k, v)
			}
			w := httptest.NewRecorder()

			tt.handler(w, tt.req)

			testutil.AssertStatus(t, w, http.StatusInternalServerError)
			if strings.Contains(w.Body.String(), "secret detail") {
				t.Errorf("Storage error leaked to client: %s", w.Body.String())
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != tt.expectedMsg {
				t.Errorf("Expected message %q, got %q", tt.expectedMsg, resp.Message)
			}
		})
	}
}
