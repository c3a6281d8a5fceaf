package model

import "time"

// QuizResult is one submitted quiz attempt. Results are append-only: every
// submission creates a new document and nothing updates or deletes them.
type QuizResult struct {
	UserID         string    `json:"user_id" bson:"user_id"`
	Score          int       `json:"score" bson:"score"`
	TotalQuestions int       `json:"total_questions" bson:"total_questions"`
	CorrectAnswers int       `json:"correct_answers" bson:"correct_answers"`
	Feedback       string    `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// QuizStats are derived per-user numbers over the whole quiz history.
type QuizStats struct {
	AverageScore   float64 `json:"average_score"`
	TotalQuestions int     `json:"total_questions"`
	LatestScore    int     `json:"latest_score"`
	Count          int     `json:"count"`
}
