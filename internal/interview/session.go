package interview

import (
	"errors"

	"interviewedge/internal/models"
)

// The session wizard moves strictly forward: Setup -> LiveInterview ->
// Report. Transitions are pure functions over an explicit state value; there
// is no rewind, a "new interview" is a brand new session.

type Step int

const (
	StepSetup Step = iota
	StepLiveInterview
	StepReport
)

func (s Step) String() string {
	switch s {
	case StepSetup:
		return "setup"
	case StepLiveInterview:
		return "live_interview"
	case StepReport:
		return "report"
	}
	return "unknown"
}

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrEmptyQuestionSet  = errors.New("question set is empty")
)

// SessionState is the wizard position plus the session it carries.
type SessionState struct {
	Step      Step
	Interview *models.Interview
}

// NewSessionState starts a fresh wizard at Setup.
func NewSessionState() SessionState {
	return SessionState{Step: StepSetup}
}

// StartLive leaves Setup once question generation produced a non-empty set.
func (s SessionState) StartLive(interview *models.Interview) (SessionState, error) {
	if s.Step != StepSetup {
		return s, ErrInvalidTransition
	}
	if interview == nil || len(interview.Questions) == 0 {
		return s, ErrEmptyQuestionSet
	}
	return SessionState{Step: StepLiveInterview, Interview: interview}, nil
}

// FinishToReport enters the terminal Report step with the finalized session.
func (s SessionState) FinishToReport(interview *models.Interview) (SessionState, error) {
	if s.Step != StepLiveInterview {
		return s, ErrInvalidTransition
	}
	if interview == nil || interview.Status != models.StatusCompleted {
		return s, ErrInvalidTransition
	}
	return SessionState{Step: StepReport, Interview: interview}, nil
}

// StepOf derives the wizard step from a persisted session.
func StepOf(interview *models.Interview) Step {
	switch {
	case interview == nil || len(interview.Questions) == 0:
		return StepSetup
	case interview.Status == models.StatusCompleted:
		return StepReport
	default:
		return StepLiveInterview
	}
}
