package handlers

import (
	"errors"
	"net/http"

	"interviewedge/internal/llm"
	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
	"interviewedge/internal/resume"
	"interviewedge/internal/utils"
)

// writeDomainError maps a domain error onto a stable code and HTTP status.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, resume.ErrNoFile):
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code: "no_file_provided", Message: "Resume file is required"})
	case errors.Is(err, resume.ErrDocumentUnreadable):
		utils.JSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Code: "document_unreadable", Message: "Resume could not be parsed as a document"})
	case errors.Is(err, llm.ErrInvalidPrompt):
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code: "invalid_prompt", Message: "Prompt must not be empty"})
	case errors.Is(err, llm.ErrMalformedResponse):
		utils.JSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
			Code: "malformed_ai_response", Message: "AI returned an unusable response"})
	case errors.Is(err, repositories.ErrInsufficientCredits):
		utils.JSON(w, http.StatusPaymentRequired, models.ErrorResponse{
			Code: "insufficient_credits", Message: "Not enough credits to start an interview"})
	case errors.Is(err, repositories.ErrInterviewCompleted):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code: "interview_completed", Message: "Interview is already completed"})
	case errors.Is(err, repositories.ErrInterviewNotFound), errors.Is(err, repositories.ErrQuestionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code: "not_found", Message: "Interview or question not found"})
	case errors.Is(err, repositories.ErrUserNotFound):
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code: "unauthorized", Message: "Unknown user"})
	default:
		var provErr *llm.ProviderError
		if errors.As(err, &provErr) {
			writeProviderError(w, provErr)
			return
		}
		var errResp *models.ErrorResponse
		if errors.As(err, &errResp) {
			utils.JSON(w, http.StatusBadRequest, *errResp)
			return
		}
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Something went wrong"})
	}
}

func writeProviderError(w http.ResponseWriter, provErr *llm.ProviderError) {
	switch provErr.Code {
	case llm.ErrCodeEmptyCompletion:
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code: "empty_completion", Message: "AI returned an empty response"})
	case llm.ErrCodeRateLimit:
		utils.JSON(w, http.StatusTooManyRequests, models.ErrorResponse{
			Code: "rate_limited", Message: "AI service rate limit exceeded"})
	default:
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code: "gateway_error", Message: "AI service is unavailable"})
	}
}
