package models

import "time"

// User is a public FakeYou profile.
type User struct {
	UserToken       string    `json:"user_token"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name"`
	EmailGravatar   string    `json:"email_gravatar_hash"`
	ProfileMarkdown string    `json:"profile_markdown"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserProfile is the body of users/{id}.
type UserProfile struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// Payload is an undecoded JSON object for endpoints whose shape the client
// passes through as-is (leaderboards, events, queue).
type Payload map[string]any
