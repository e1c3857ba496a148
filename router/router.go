// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/survey-score/handlers"
	"github.com/danielhkuo/survey-score/middleware"
)

func NewRouter(store handlers.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(store)
	scoreHandler := handlers.NewScoreHandler(store)
	surveyHandler := handlers.NewSurveyHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("POST /api/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(userHandler.Login))
	mux.HandleFunc("GET /api/users/{uuid}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("PUT /api/users/{uuid}/scored", middleware.WithLogging(userHandler.UpdateScored))

	// Scores
	mux.HandleFunc("POST /api/survey/submit", middleware.WithLogging(scoreHandler.Submit))
	mux.HandleFunc("GET /api/scores/{userId}", middleware.WithLogging(scoreHandler.GetByUserID))
	mux.HandleFunc("GET /api/scores/uuid/{uuid}", middleware.WithLogging(scoreHandler.GetByUserUUID))
	mux.HandleFunc("GET /api/users/{uuid}/scores", middleware.WithLogging(scoreHandler.History))

	// Survey responses
	mux.HandleFunc("POST /api/survey/responses", middleware.WithLogging(surveyHandler.SaveResponse))
	mux.HandleFunc("GET /api/survey/responses/{userId}", middleware.WithLogging(surveyHandler.GetResponses))
	mux.HandleFunc("GET /api/survey/responses/{userId}/{questionId}", middleware.WithLogging(surveyHandler.GetResponse))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey-score API v1"))
	})

	return mux
}
