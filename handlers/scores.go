// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/survey-score/middleware"
	"github.com/danielhkuo/survey-score/models"
	"github.com/danielhkuo/survey-score/queries"
)

type ScoreHandler struct {
	store Store
}

func NewScoreHandler(store Store) *ScoreHandler {
	return &ScoreHandler{store: store}
}

// Submit handles POST /api/survey/submit
// Records one score for a user id
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.store.CreateScore(r.Context(), models.NewScore{
		UserID: req.UserID,
		Score:  req.Score,
	})
	if err != nil {
		slog.Error("failed to insert score", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creating score")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Score created successfully",
	})
}

// GetByUserID handles GET /api/scores/{userId}
// Returns the latest score of the user
func (h *ScoreHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "userId")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	score, err := h.store.GetScoreByUserID(r.Context(), userID)
	if errors.Is(err, queries.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Scores not found")
		return
	}
	if err != nil {
		slog.Error("failed to query score", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving scores")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, score)
}

// GetByUserUUID handles GET /api/scores/uuid/{uuid}
// Returns the latest score of the user
func (h *ScoreHandler) GetByUserUUID(w http.ResponseWriter, r *http.Request) {
	score, err := h.store.GetScoreByUserUUID(r.Context(), r.PathValue("uuid"))
	if errors.Is(err, queries.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Scores not found")
		return
	}
	if err != nil {
		slog.Error("failed to query score by uuid", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving scores")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, score)
}

// History handles GET /api/users/{uuid}/scores
// Returns all scores of the user, newest first
func (h *ScoreHandler) History(w http.ResponseWriter, r *http.Request) {
	scores, err := h.store.ListScoresByUserUUID(r.Context(), r.PathValue("uuid"))
	if err != nil {
		slog.Error("failed to list scores", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving scores")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scores)
}
