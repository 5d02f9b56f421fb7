package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"interviewedge/internal/interview"
	"interviewedge/internal/middleware"
	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
)

const testSecret = "test-secret"

type fakeExtractor struct {
	extractFn func(path string) (string, error)
}

func (f *fakeExtractor) ExtractText(path string) (string, error) {
	if f.extractFn == nil {
		return "extracted resume text", nil
	}
	return f.extractFn(path)
}

type fakeAnalyzer struct {
	analyzeFn func(ctx context.Context, resumeText, requestID string) (*models.ResumeProfile, error)
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, resumeText, requestID string) (*models.ResumeProfile, error) {
	if f.analyzeFn == nil {
		return &models.ResumeProfile{Role: "Dev", Experience: "2 years", Projects: []string{}, Skills: []string{}, ResumeText: resumeText}, nil
	}
	return f.analyzeFn(ctx, resumeText, requestID)
}

type fakeGenerator struct {
	generateFn func(ctx context.Context, user *models.User, req *models.GenerateQuestionsRequest) (*models.Interview, int, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, user *models.User, req *models.GenerateQuestionsRequest) (*models.Interview, int, error) {
	if f.generateFn == nil {
		return nil, 0, repositories.ErrNotImplemented
	}
	return f.generateFn(ctx, user, req)
}

type fakeEvaluator struct {
	submitFn func(ctx context.Context, userID string, req *models.SubmitAnswerRequest) (*interview.EvaluationResult, error)
}

func (f *fakeEvaluator) SubmitAnswer(ctx context.Context, userID string, req *models.SubmitAnswerRequest) (*interview.EvaluationResult, error) {
	if f.submitFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.submitFn(ctx, userID, req)
}

type fakeFinisher struct {
	finishFn func(ctx context.Context, userID, interviewID string) (*models.Interview, error)
}

func (f *fakeFinisher) Finish(ctx context.Context, userID, interviewID string) (*models.Interview, error) {
	if f.finishFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.finishFn(ctx, userID, interviewID)
}

type fakeUserRepo struct {
	findOrCreateFn     func(ctx context.Context, name, email string, signupCredits int) (*models.User, error)
	getByIDFn          func(ctx context.Context, id string) (*models.User, error)
	decrementCreditsFn func(ctx context.Context, id string, cost int) (int, error)
}

func (f *fakeUserRepo) FindOrCreate(ctx context.Context, name, email string, signupCredits int) (*models.User, error) {
	if f.findOrCreateFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.findOrCreateFn(ctx, name, email, signupCredits)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) DecrementCredits(ctx context.Context, id string, cost int) (int, error) {
	if f.decrementCreditsFn == nil {
		return 0, repositories.ErrNotImplemented
	}
	return f.decrementCreditsFn(ctx, id, cost)
}

type fakeInterviewRepo struct {
	createFn    func(ctx context.Context, session *models.Interview) (*models.Interview, error)
	getByIDFn   func(ctx context.Context, id string) (*models.Interview, error)
	setAnswerFn func(ctx context.Context, id string, index int, question models.Question) (*models.Interview, error)
	finalizeFn  func(ctx context.Context, id string, score float64) (*models.Interview, error)
}

func (f *fakeInterviewRepo) Create(ctx context.Context, session *models.Interview) (*models.Interview, error) {
	if f.createFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.createFn(ctx, session)
}

func (f *fakeInterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	if f.getByIDFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeInterviewRepo) SetAnswer(ctx context.Context, id string, index int, question models.Question) (*models.Interview, error) {
	if f.setAnswerFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.setAnswerFn(ctx, id, index, question)
}

func (f *fakeInterviewRepo) Finalize(ctx context.Context, id string, score float64) (*models.Interview, error) {
	if f.finalizeFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.finalizeFn(ctx, id, score)
}

func signTestToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// performAuthedRequest runs a prepared request through RequireAuth plus the
// given handler chain.
func performAuthedRequest(t *testing.T, handler http.Handler, req *http.Request, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, userID))
	rec := httptest.NewRecorder()
	middleware.RequireAuth(testSecret)(handler).ServeHTTP(rec, req)
	return rec
}

func performAuthed(t *testing.T, handler http.Handler, method, target string, body io.Reader, userID string) *httptest.ResponseRecorder {
	t.Helper()
	return performAuthedRequest(t, handler, httptest.NewRequest(method, target, body), userID)
}

func httptestRequestJSON(t *testing.T, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func performRecorded(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
