package routers

import (
	"github.com/go-chi/chi/v5"

	"interviewedge/internal/handlers"
	"interviewedge/internal/middleware"
	"interviewedge/internal/models"
)

func InterviewRoutes(router *chi.Mux, handler *handlers.InterviewHandler, jwtSecret string) {
	router.Route("/api/interview", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))

		r.Post("/resume-analysis", handler.ResumeAnalysisHandler)
		r.With(middleware.ValidateRequest[*models.GenerateQuestionsRequest]()).Post("/generate-questions", handler.GenerateQuestionsHandler)
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/submit-answer", handler.SubmitAnswerHandler)
		r.With(middleware.ValidateRequest[*models.FinishInterviewRequest]()).Post("/finish-interview", handler.FinishInterviewHandler)
		r.Get("/{id}", handler.GetInterviewHandler)
	})
}
