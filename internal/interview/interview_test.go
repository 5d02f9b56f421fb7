package interview

import (
	"context"

	"interviewedge/internal/llm"
	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
)

type mockProvider struct {
	completeFn func(ctx context.Context, messages []llm.Message, requestID string) (string, error)
}

func (m *mockProvider) Complete(ctx context.Context, messages []llm.Message, requestID string) (string, error) {
	if m.completeFn == nil {
		return "", nil
	}
	return m.completeFn(ctx, messages, requestID)
}

func (m *mockProvider) GetProviderName() string { return "mock" }

type mockPromptManager struct {
	buildPromptFn func(name, variant string, data map[string]string) (string, error)
}

func (m *mockPromptManager) BuildPrompt(name, variant string, data map[string]string) (string, error) {
	if m.buildPromptFn == nil {
		return "mock prompt", nil
	}
	return m.buildPromptFn(name, variant, data)
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
	createFn    func(ctx context.Context, interview *models.Interview) (*models.Interview, error)
	getByIDFn   func(ctx context.Context, id string) (*models.Interview, error)
	setAnswerFn func(ctx context.Context, id string, index int, question models.Question) (*models.Interview, error)
	finalizeFn  func(ctx context.Context, id string, score float64) (*models.Interview, error)
}

func (f *fakeInterviewRepo) Create(ctx context.Context, interview *models.Interview) (*models.Interview, error) {
	if f.createFn == nil {
		return nil, repositories.ErrNotImplemented
	}
	return f.createFn(ctx, interview)
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
