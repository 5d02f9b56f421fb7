package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// returned by POST /generate-questions: the freshly created session plus
// the caller's remaining credit balance
type GenerateQuestionsResponse struct {
	Interview   *Interview `json:"interview"`
	CreditsLeft int        `json:"creditsLeft"`
}

type SubmitAnswerResponse struct {
	QuestionIndex int      `json:"questionIndex"`
	Question      Question `json:"question"`
	// set when AI scoring failed and the answer was recorded with
	// default scores
	ScoringError string `json:"scoringError,omitempty"`
}

type AuthResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}
