package handlers

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"interviewedge/internal/interview"
	"interviewedge/internal/middleware"
	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
	"interviewedge/internal/resume"
	"interviewedge/internal/utils"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// narrow interfaces over the services so tests can fake them

type TextExtractor interface {
	ExtractText(path string) (string, error)
}

type ResumeAnalyzer interface {
	Analyze(ctx context.Context, resumeText, requestID string) (*models.ResumeProfile, error)
}

type QuestionGenerator interface {
	Generate(ctx context.Context, user *models.User, req *models.GenerateQuestionsRequest) (*models.Interview, int, error)
}

type AnswerEvaluator interface {
	SubmitAnswer(ctx context.Context, userID string, req *models.SubmitAnswerRequest) (*interview.EvaluationResult, error)
}

type InterviewFinisher interface {
	Finish(ctx context.Context, userID, interviewID string) (*models.Interview, error)
}

type InterviewHandler struct {
	extractor  TextExtractor
	analyzer   ResumeAnalyzer
	generator  QuestionGenerator
	evaluator  AnswerEvaluator
	finisher   InterviewFinisher
	users      repositories.UserRepo
	interviews repositories.InterviewRepo
	uploadDir  string
	logger     *zap.Logger
}

func NewInterviewHandler(
	extractor TextExtractor,
	analyzer ResumeAnalyzer,
	generator QuestionGenerator,
	evaluator AnswerEvaluator,
	finisher InterviewFinisher,
	users repositories.UserRepo,
	interviews repositories.InterviewRepo,
	uploadDir string,
	logger *zap.Logger,
) *InterviewHandler {
	return &InterviewHandler{
		extractor:  extractor,
		analyzer:   analyzer,
		generator:  generator,
		evaluator:  evaluator,
		finisher:   finisher,
		users:      users,
		interviews: interviews,
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

// ResumeAnalysisHandler stages the uploaded file, extracts and analyzes it,
// and deletes the staged file on every exit path.
func (h *InterviewHandler) ResumeAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeDomainError(w, resume.ErrNoFile)
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		writeDomainError(w, resume.ErrNoFile)
		return
	}
	defer file.Close()

	path, err := h.stageUpload(file, header.Filename)
	if err != nil {
		h.logger.Error("Failed to stage resume upload", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "internal_error", Message: "Failed to store upload"})
		return
	}
	// the staged file is a single-request resource
	defer os.Remove(path)

	text, err := h.extractor.ExtractText(path)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	profile, err := h.analyzer.Analyze(r.Context(), text, uuid.New().String())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, profile)
}

func (h *InterviewHandler) stageUpload(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(h.uploadDir, uuid.New().String()+filepath.Ext(filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (h *InterviewHandler) GenerateQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateQuestionsRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	user, err := h.users.GetByID(r.Context(), middleware.GetUserID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	// cheap gate before spending an AI call; the decrement itself is atomic
	if user.Credits <= 0 {
		writeDomainError(w, repositories.ErrInsufficientCredits)
		return
	}

	session, creditsLeft, err := h.generator.Generate(r.Context(), user, req)
	if err != nil {
		h.logger.Error("Question generation failed",
			zap.Error(err),
			zap.String("request_id", req.RequestID))
		writeDomainError(w, err)
		return
	}

	h.logger.Info("Interview session created",
		zap.String("interview_id", session.ID.Hex()),
		zap.String("mode", session.Mode),
		zap.Int("questions", len(session.Questions)),
		zap.String("request_id", req.RequestID))

	utils.JSON(w, http.StatusOK, models.GenerateQuestionsResponse{
		Interview:   session,
		CreditsLeft: creditsLeft,
	})
}

func (h *InterviewHandler) SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	result, err := h.evaluator.SubmitAnswer(r.Context(), middleware.GetUserID(r), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := models.SubmitAnswerResponse{
		QuestionIndex: result.QuestionIndex,
		Question:      result.Question,
	}
	if result.ScoringErr != nil {
		resp.ScoringError = "Automatic scoring was unavailable for this answer"
	}
	utils.JSON(w, http.StatusOK, resp)
}

func (h *InterviewHandler) FinishInterviewHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.FinishInterviewRequest](r)

	session, err := h.finisher.Finish(r.Context(), middleware.GetUserID(r), req.InterviewID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.logger.Info("Interview finalized",
		zap.String("interview_id", session.ID.Hex()),
		zap.Float64("score", session.Score))

	utils.JSON(w, http.StatusOK, session)
}

// GetInterviewHandler returns one of the caller's sessions, letting the
// client reload a report.
func (h *InterviewHandler) GetInterviewHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.interviews.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if session.UserID.Hex() != middleware.GetUserID(r) {
		writeDomainError(w, repositories.ErrInterviewNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, session)
}

func ensureRequestID(requestID string) string {
	if requestID == "" {
		return uuid.New().String()
	}
	return requestID
}
