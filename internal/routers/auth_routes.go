package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewedge/internal/handlers"
	"interviewedge/internal/middleware"
	"interviewedge/internal/models"
)

func AuthRoutes(router *chi.Mux, handler *handlers.AuthHandler, jwtSecret string) {
	router.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.GoogleAuthRequest]()).Post("/google", handler.GoogleAuthHandler)
		r.Post("/logout", handler.LogoutHandler)
		r.With(middleware.RequireAuth(jwtSecret)).Get("/me", handler.MeHandler)
	})
}
