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

type UserHandler struct {
	store Store
}

func NewUserHandler(store Store) *UserHandler {
	return &UserHandler{store: store}
}

// Register handles POST /api/register
// Creates a user and returns its uuid
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userUUID, err := h.store.CreateUser(r.Context(), models.NewUser{
		FullName: req.FullName,
		Email:    req.Email,
		Company:  req.Company,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, queries.ErrDuplicateUser) {
			slog.Warn("duplicate registration", "error", err)
		} else {
			slog.Error("failed to create user", "error", err)
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	slog.Info("user registered", "uuid", userUUID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		Message: "User created successfully",
		UUID:    userUUID,
	})
}

// Login handles POST /api/login
// Looks a user up by email; there is no password
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// A missing email never matches, not even users registered without one
	if req.Email == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), *req.Email)
	if errors.Is(err, queries.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query user by email", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		User:    user,
	})
}

// GetUser handles GET /api/users/{uuid}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUserByUUID(r.Context(), r.PathValue("uuid"))
	if errors.Is(err, queries.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error retrieving user")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user.Public())
}

// UpdateScored handles PUT /api/users/{uuid}/scored
// Unknown uuids succeed without changing anything
func (h *UserHandler) UpdateScored(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScoredRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.UpdateScored(r.Context(), r.PathValue("uuid"), req.Scored); err != nil {
		slog.Error("failed to update scored flag", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error updating user")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "User updated successfully",
	})
}
