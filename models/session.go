package models

// LoginRequest is the body of POST login.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// Session is the payload returned by a successful login or account creation.
// SignedSession, when present, is stored by the client as the session cookie.
type Session struct {
	Success       bool   `json:"success"`
	SignedSession string `json:"signed_session,omitempty"`
}

// CreateAccountRequest is the body of POST users.
type CreateAccountRequest struct {
	Username             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Email                string `json:"email_address"`
}

// ErrorFields describes per-field validation failures returned with HTTP 400
// on account creation, e.g. {"username": "username is too short"}.
type ErrorFields map[string]string

// ValidationError is the 400 body of POST users.
type ValidationError struct {
	Success     bool        `json:"success"`
	ErrorType   string      `json:"error_type"`
	ErrorFields ErrorFields `json:"error_fields"`
}
