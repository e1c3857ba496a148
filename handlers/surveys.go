// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/survey-score/middleware"
	"github.com/danielhkuo/survey-score/models"
	"github.com/danielhkuo/survey-score/queries"
)

type SurveyHandler struct {
	store Store
}

func NewSurveyHandler(store Store) *SurveyHandler {
	return &SurveyHandler{store: store}
}

// SaveResponse handles POST /api/survey/responses
// Appends an answer; earlier answers to the same question are kept
func (h *SurveyHandler) SaveResponse(w http.ResponseWriter, r *http.Request) {
	var req models.SaveResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.store.SaveSurveyResponse(r.Context(), models.NewSurveyResponse{
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
	})
	if err != nil {
		slog.Error("failed to insert survey response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error saving response")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Response saved successfully",
	})
}

// GetResponses handles GET /api/survey/responses/{userId}
func (h *SurveyHandler) GetResponses(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "userId")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	responses, err := h.store.GetUserResponses(r.Context(), userID)
	if err != nil {
		slog.Error("failed to query survey responses", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving responses")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, responses)
}

// GetResponse handles GET /api/survey/responses/{userId}/{questionId}
func (h *SurveyHandler) GetResponse(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "userId")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	questionID, err := strconv.Atoi(r.PathValue("questionId"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid question id")
		return
	}

	resp, err := h.store.GetResponseByQuestion(r.Context(), userID, questionID)
	if errors.Is(err, queries.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Response not found")
		return
	}
	if err != nil {
		slog.Error("failed to query survey response", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving response")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
