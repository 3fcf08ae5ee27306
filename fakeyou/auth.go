package fakeyou

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fakeyou/models"
)

// Login sends the credentials to POST login and returns the session payload.
// When the payload carries a signed session it is attached to all subsequent
// requests as the session cookie.
//
// Returns [ErrInvalidCredentials] on HTTP 401, [ErrTooManyRequests] on 429,
// and [ErrRequest] for any other non-200 status.
func (c *Client) Login(ctx context.Context, username, password string) (models.Session, error) {
	const endpoint = "login"
	var session models.Session

	c.logger.Debug().Msg("sending login request")
	resp, err := c.request(ctx).
		SetBody(models.LoginRequest{UsernameOrEmail: username, Password: password}).
		Post(endpoint)
	if err != nil {
		return session, fmt.Errorf("login request: %w", err)
	}
	c.logResponse(endpoint, resp)

	if err = requireOK(endpoint, resp, loginFailures); err != nil {
		return session, err
	}
	if err = decodeBody(endpoint, resp, &session); err != nil {
		return session, err
	}

	if session.SignedSession != "" {
		c.setSession(session.SignedSession)
	}

	return session, nil
}

// Logout invalidates the session server-side and reports whether it
// succeeded. Failures are logged, not returned. The local session state is
// dropped only on success.
func (c *Client) Logout(ctx context.Context) bool {
	const endpoint = "logout"

	resp, err := c.request(ctx).Post(endpoint)
	if err != nil {
		c.logger.Warn().Err(err).Msg("logout request failed")
		return false
	}
	c.logResponse(endpoint, resp)

	if err = mapHTTPError(endpoint, resp, resultFailures); err != nil {
		c.logger.Warn().Err(err).Msg("logout rejected")
		return false
	}

	c.clearSession()
	return true
}

// CreateAccount registers a new user with POST users. On success the
// returned session is attached like in [Client.Login].
//
// A 400 response is mapped onto [ErrUsernameTooShort], [ErrUsernameTaken],
// [ErrEmailTaken], [ErrEmailInvalid], or [ErrPasswordTooShort] from its
// error_fields; unrecognised validation failures are [ErrRequest].
func (c *Client) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Session, error) {
	const endpoint = "users"
	var session models.Session

	if req.PasswordConfirmation == "" {
		req.PasswordConfirmation = req.Password
	}

	resp, err := c.request(ctx).SetBody(req).Post(endpoint)
	if err != nil {
		return session, fmt.Errorf("create account request: %w", err)
	}
	c.logResponse(endpoint, resp)

	if resp.StatusCode() == http.StatusBadRequest {
		if kind, ok := accountValidationKind(resp.Body()); ok {
			return session, &Error{Kind: kind, Endpoint: endpoint, StatusCode: resp.StatusCode(), Body: responseText(resp)}
		}
	}
	if err = requireOK(endpoint, resp, accountFailures); err != nil {
		return session, err
	}
	if err = decodeBody(endpoint, resp, &session); err != nil {
		return session, err
	}

	if session.SignedSession != "" {
		c.setSession(session.SignedSession)
	}

	return session, nil
}

// accountValidationKind inspects the error_fields of a 400 body. Fields are
// checked in a fixed order (username, email, password) so that one response
// always maps to the same kind.
func accountValidationKind(body []byte) (Kind, bool) {
	var verr models.ValidationError
	if err := json.Unmarshal(body, &verr); err != nil || len(verr.ErrorFields) == 0 {
		return KindRequest, false
	}

	field := func(names ...string) string {
		for _, name := range names {
			if msg, ok := verr.ErrorFields[name]; ok {
				return strings.ToLower(msg)
			}
		}
		return ""
	}

	if msg := field("username"); msg != "" {
		switch {
		case strings.Contains(msg, "short"):
			return KindUsernameTooShort, true
		case strings.Contains(msg, "taken"):
			return KindUsernameTaken, true
		}
	}
	if msg := field("email_address", "email"); msg != "" {
		switch {
		case strings.Contains(msg, "taken"):
			return KindEmailTaken, true
		case strings.Contains(msg, "invalid"):
			return KindEmailInvalid, true
		}
	}
	if msg := field("password"); strings.Contains(msg, "short") {
		return KindPasswordTooShort, true
	}

	return KindRequest, false
}
