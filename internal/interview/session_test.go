package interview

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"interviewedge/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	owner := primitive.NewObjectID()
	session := liveSession(owner)

	state := NewSessionState()
	if state.Step != StepSetup {
		t.Fatalf("expected fresh state at setup, got %s", state.Step)
	}

	state, err := state.StartLive(session)
	if err != nil {
		t.Fatalf("StartLive returned error: %v", err)
	}
	if state.Step != StepLiveInterview {
		t.Fatalf("expected live step, got %s", state.Step)
	}

	session.Status = models.StatusCompleted
	state, err = state.FinishToReport(session)
	if err != nil {
		t.Fatalf("FinishToReport returned error: %v", err)
	}
	if state.Step != StepReport {
		t.Fatalf("expected report step, got %s", state.Step)
	}
}

func TestStartLiveRejectsEmptyQuestionSet(t *testing.T) {
	state := NewSessionState()

	if _, err := state.StartLive(nil); !errors.Is(err, ErrEmptyQuestionSet) {
		t.Fatalf("expected ErrEmptyQuestionSet for nil session, got %v", err)
	}
	if _, err := state.StartLive(&models.Interview{}); !errors.Is(err, ErrEmptyQuestionSet) {
		t.Fatalf("expected ErrEmptyQuestionSet for no questions, got %v", err)
	}
}

func TestTransitionsOnlyMoveForward(t *testing.T) {
	owner := primitive.NewObjectID()
	session := liveSession(owner)

	live, err := NewSessionState().StartLive(session)
	if err != nil {
		t.Fatalf("StartLive returned error: %v", err)
	}

	// no re-entry into live from live
	if _, err := live.StartLive(session); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// finishing requires the session to actually be completed
	if _, err := live.FinishToReport(session); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for incomplete session, got %v", err)
	}

	// no finishing straight from setup
	if _, err := NewSessionState().FinishToReport(session); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from setup, got %v", err)
	}
}

func TestStepOf(t *testing.T) {
	owner := primitive.NewObjectID()

	if got := StepOf(nil); got != StepSetup {
		t.Fatalf("expected setup for nil session, got %s", got)
	}
	if got := StepOf(&models.Interview{}); got != StepSetup {
		t.Fatalf("expected setup for empty session, got %s", got)
	}

	session := liveSession(owner)
	if got := StepOf(session); got != StepLiveInterview {
		t.Fatalf("expected live step, got %s", got)
	}

	session.Status = models.StatusCompleted
	if got := StepOf(session); got != StepReport {
		t.Fatalf("expected report step, got %s", got)
	}
}
