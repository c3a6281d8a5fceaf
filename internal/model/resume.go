package model

import "time"

type ResumeExperience struct {
	Company     string `json:"company" bson:"company"`
	Role        string `json:"role" bson:"role"`
	Start       string `json:"start" bson:"start"`
	End         string `json:"end" bson:"end"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type ResumeEducation struct {
	School  string `json:"school" bson:"school"`
	Degree  string `json:"degree" bson:"degree"`
	Start   string `json:"start" bson:"start"`
	End     string `json:"end" bson:"end"`
	Details string `json:"details,omitempty" bson:"details,omitempty"`
}

type ResumeProject struct {
	Name        string `json:"name" bson:"name"`
	Link        string `json:"link,omitempty" bson:"link,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// ResumeProfile is the single resume document per user_id. A write fully
// replaces every field of the stored document except created_at.
type ResumeProfile struct {
	UserID      string             `json:"user_id" bson:"user_id"`
	Email       string             `json:"email,omitempty" bson:"email"`
	LinkedIn    string             `json:"linkedin,omitempty" bson:"linkedin"`
	Twitter     string             `json:"twitter,omitempty" bson:"twitter"`
	Summary     string             `json:"summary,omitempty" bson:"summary"`
	Skills      []string           `json:"skills" bson:"skills"`
	Experiences []ResumeExperience `json:"experiences" bson:"experiences"`
	Education   []ResumeEducation  `json:"education" bson:"education"`
	Projects    []ResumeProject    `json:"projects" bson:"projects"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
