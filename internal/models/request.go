package models

import "strings"

type GenerateQuestionsRequest struct {
	Role       string   `json:"role"`
	Experience string   `json:"experience"`
	Mode       string   `json:"mode"`
	Projects   []string `json:"projects,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	ResumeText string   `json:"resumeText,omitempty"`
	RequestID  string   `json:"request_id,omitempty"`
}

// implements the Validator interface
func (r *GenerateQuestionsRequest) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return &ErrorResponse{Code: "missing_role", Message: "Role field is required"}
	}
	if strings.TrimSpace(r.Experience) == "" {
		return &ErrorResponse{Code: "missing_experience", Message: "Experience field is required"}
	}
	if r.Mode == "" {
		return &ErrorResponse{Code: "missing_mode", Message: "Mode field is required"}
	}
	if !ValidModes[r.Mode] {
		return &ErrorResponse{
			Code:    "invalid_mode",
			Message: "Mode must be one of: " + strings.Join(ValidModesList(), ", "),
		}
	}
	return nil
}

type SubmitAnswerRequest struct {
	InterviewID   string `json:"interviewId"`
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
	RequestID     string `json:"request_id,omitempty"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.InterviewID == "" {
		return &ErrorResponse{Code: "missing_interview_id", Message: "interviewId is required"}
	}
	if r.QuestionIndex < 0 {
		return &ErrorResponse{Code: "invalid_question_index", Message: "questionIndex must be non-negative"}
	}
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{Code: "missing_answer", Message: "Answer field is required"}
	}
	return nil
}

type FinishInterviewRequest struct {
	InterviewID string `json:"interviewId"`
}

func (r *FinishInterviewRequest) Validate() error {
	if r.InterviewID == "" {
		return &ErrorResponse{Code: "missing_interview_id", Message: "interviewId is required"}
	}
	return nil
}

type GoogleAuthRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *GoogleAuthRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ErrorResponse{Code: "missing_name", Message: "Name field is required"}
	}
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		return &ErrorResponse{Code: "invalid_email", Message: "A valid email is required"}
	}
	return nil
}
