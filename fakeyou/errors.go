package fakeyou

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one distinguishable failure condition of the API.
type Kind uint8

const (
	KindRequest Kind = iota
	KindTooManyRequests
	KindInvalidCredentials
	KindUnAuthorized
	KindUsernameTooShort
	KindUsernameTaken
	KindEmailTaken
	KindEmailInvalid
	KindPasswordTooShort
	KindW2lTemplateTokenWrong
	KindTtsResultNotFound
	KindDead
	KindPathNull
	KindUserNotFound
	KindNotFound
	KindPollExhausted
)

// Sentinel errors, one per [Kind]. An [*Error] unwraps to the sentinel of
// its kind, so callers match with errors.Is. Errors of the job lifecycle
// (not found, dead, null path, poll exhausted,
// wrong template) match [ErrRequest] as well.
var (
	ErrRequest               = errors.New("an error occurred with the request")
	ErrTooManyRequests       = errors.New("too many requests, try again later")
	ErrInvalidCredentials    = errors.New("check username or password")
	ErrUnAuthorized          = errors.New("unauthorized access")
	ErrUsernameTooShort      = errors.New("username too short")
	ErrUsernameTaken         = errors.New("username taken")
	ErrEmailTaken            = errors.New("email taken")
	ErrEmailInvalid          = errors.New("invalid email format")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrW2lTemplateTokenWrong = errors.New("wrong w2l template token")
	ErrTtsResultNotFound     = errors.New("tts result not found")
	ErrDead                  = errors.New("job is dead, server discarded it")
	ErrPathNull              = errors.New("server returned a null path")
	ErrUserNotFound          = errors.New("user not found")
	ErrNotFound              = errors.New("job not found")
	ErrPollExhausted         = errors.New("poll attempts exhausted")
)

// kinds describes every Kind. Protocol kinds refine a failed request and
// also match [ErrRequest]; throttling, authentication and account
// validation kinds do not.
var kinds = [...]struct {
	name     string
	sentinel error
	protocol bool
}{
	KindRequest:               {"request_error", ErrRequest, false},
	KindTooManyRequests:       {"too_many_requests", ErrTooManyRequests, false},
	KindInvalidCredentials:    {"invalid_credentials", ErrInvalidCredentials, false},
	KindUnAuthorized:          {"unauthorized", ErrUnAuthorized, false},
	KindUsernameTooShort:      {"username_too_short", ErrUsernameTooShort, false},
	KindUsernameTaken:         {"username_taken", ErrUsernameTaken, false},
	KindEmailTaken:            {"email_taken", ErrEmailTaken, false},
	KindEmailInvalid:          {"email_invalid", ErrEmailInvalid, false},
	KindPasswordTooShort:      {"password_too_short", ErrPasswordTooShort, false},
	KindW2lTemplateTokenWrong: {"w2l_template_token_wrong", ErrW2lTemplateTokenWrong, true},
	KindTtsResultNotFound:     {"tts_result_not_found", ErrTtsResultNotFound, true},
	KindDead:                  {"dead", ErrDead, true},
	KindPathNull:              {"path_null", ErrPathNull, true},
	KindUserNotFound:          {"user_not_found", ErrUserNotFound, false},
	KindNotFound:              {"not_found", ErrNotFound, true},
	KindPollExhausted:         {"poll_exhausted", ErrPollExhausted, true},
}

func (k Kind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Sentinel returns the sentinel error of k, or [ErrRequest] for an unknown kind.
func (k Kind) Sentinel() error {
	if int(k) < len(kinds) {
		return kinds[k].sentinel
	}
	return ErrRequest
}

func (k Kind) protocol() bool {
	return int(k) < len(kinds) && kinds[k].protocol
}

// Error is a failure reported by the API or detected in its response.
type Error struct {
	Kind Kind

	// Endpoint is the API path relative to the base URL, e.g. "tts/voices".
	Endpoint string

	// StatusCode is the HTTP status; 0 when the failure was found in a
	// successful response body (missing field, unexpected status value).
	StatusCode int

	// Body is the raw response text, truncated to maxErrorBody bytes.
	Body string

	// Msg overrides the kind's default description.
	Msg string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Endpoint != "" {
		b.WriteString(e.Endpoint)
		b.WriteString(": ")
	}
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		b.WriteString(e.Kind.Sentinel().Error())
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (http %d)", e.StatusCode)
	}
	if e.Body != "" {
		b.WriteString(": ")
		b.WriteString(e.Body)
	}
	return b.String()
}

// Unwrap returns the sentinel of the kind, followed by [ErrRequest] for
// protocol kinds such as [KindDead] or [KindNotFound].
func (e *Error) Unwrap() []error {
	if e.Kind.protocol() {
		return []error{e.Kind.Sentinel(), ErrRequest}
	}
	return []error{e.Kind.Sentinel()}
}

// AsError extracts *Error from err.
func AsError(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// KindOf reports the kind of err. ok is false for errors that did not come
// from the API, such as transport failures or context cancellation.
func KindOf(err error) (kind Kind, ok bool) {
	fe, ok := AsError(err)
	if !ok {
		return KindRequest, false
	}
	return fe.Kind, true
}
