package model

import "time"

// User mirrors the documents the auth frontend writes into the users
// collection. The backend has no user endpoints; the shape is kept typed so
// future readers of that collection share one definition.
type User struct {
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	AvatarURL string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Provider  string    `json:"provider,omitempty" bson:"provider,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
