package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InterviewStatus string

const (
	StatusIncomplete InterviewStatus = "incomplete"
	StatusCompleted  InterviewStatus = "completed"
)

// Question is embedded in its Interview and is not independently addressable.
// Sub-scores stay at zero until the answer has been evaluated.
type Question struct {
	Text          string  `bson:"text" json:"question"`
	Difficulty    string  `bson:"difficulty" json:"difficulty"`
	TimeLimit     int     `bson:"time_limit" json:"timeLimit"`
	Answer        string  `bson:"answer,omitempty" json:"answer,omitempty"`
	Feedback      string  `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Score         float64 `bson:"score" json:"score"`
	Confidence    float64 `bson:"confidence" json:"confidence"`
	Communication float64 `bson:"communication" json:"communication"`
	Correctness   float64 `bson:"correctness" json:"correctness"`
}

// Interview is one mock-interview attempt. Status only ever moves
// incomplete -> completed; Score is meaningful once completed.
type Interview struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"userId"`
	Role       string             `bson:"role" json:"role"`
	Experience string             `bson:"experience" json:"experience"`
	Mode       string             `bson:"mode" json:"mode"`
	ResumeText string             `bson:"resume_text,omitempty" json:"resumeText,omitempty"`
	Questions  []Question         `bson:"questions" json:"questions"`
	Score      float64            `bson:"score" json:"score"`
	Status     InterviewStatus    `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// ResumeProfile is transient: produced per upload, returned to the client,
// never stored server-side.
type ResumeProfile struct {
	Role       string   `json:"role"`
	Experience string   `json:"experience"`
	Projects   []string `json:"projects"`
	Skills     []string `json:"skills"`
	ResumeText string   `json:"resumeText"`
}
