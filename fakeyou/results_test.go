package fakeyou

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-fakeyou/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteResults(t *testing.T) {
	tests := []struct {
		name   string
		status int
		call   func(c *Client) (bool, error)
		path   string
	}{
		{"tts ok", http.StatusOK, func(c *Client) (bool, error) {
			return c.DeleteTTSResult(context.Background(), "TR:1")
		}, "/tts/TR:1"},
		{"tts no content", http.StatusNoContent, func(c *Client) (bool, error) {
			return c.DeleteTTSResult(context.Background(), "TR:2")
		}, "/tts/TR:2"},
		{"w2l ok", http.StatusOK, func(c *Client) (bool, error) {
			return c.DeleteW2LResult(context.Background(), "WR:1")
		}, "/w2l/WR:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var method, path string
			record := func(w http.ResponseWriter, r *http.Request) {
				method, path = r.Method, r.URL.Path
				w.WriteHeader(tt.status)
			}
			c, _ := newTestClient(t, func(r chi.Router) {
				r.Delete("/tts/{id}", record)
				r.Delete("/w2l/{id}", record)
			})

			ok, err := tt.call(c)

			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, http.MethodDelete, method)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestDeleteResults_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnAuthorized},
		{"rate limited", http.StatusTooManyRequests, ErrTooManyRequests},
		{"missing", http.StatusNotFound, ErrRequest},
		{"server error", http.StatusInternalServerError, ErrRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(r chi.Router) {
				r.Delete("/tts/{id}", respond(tt.status, `nope`))
			})

			ok, err := c.DeleteTTSResult(context.Background(), "TR:1")

			require.Error(t, err)
			assert.False(t, ok)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetUser(t *testing.T) {
	c, _ := newTestClient(t, func(r chi.Router) {
		r.Get("/users/{id}", respond(http.StatusOK, `{
			"success": true,
			"user": {"user_token": "U:1", "username": "alice", "display_name": "Alice"}
		}`))
	})

	user, err := c.GetUser(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, models.User{UserToken: "U:1", Username: "alice", DisplayName: "Alice"}, user)
}

func TestGetUser_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unknown user", http.StatusNotFound, ErrUserNotFound},
		{"unauthorized", http.StatusUnauthorized, ErrUnAuthorized},
		{"rate limited", http.StatusTooManyRequests, ErrTooManyRequests},
		{"server error", http.StatusInternalServerError, ErrRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(r chi.Router) {
				r.Get("/users/{id}", respond(tt.status, `{}`))
			})

			_, err := c.GetUser(context.Background(), "ghost")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPayloadEndpoints(t *testing.T) {
	tests := []struct {
		route string
		call  func(c *Client) (models.Payload, error)
	}{
		{"/queue", func(c *Client) (models.Payload, error) { return c.GetQueue(context.Background()) }},
		{"/tts/leaderboard", func(c *Client) (models.Payload, error) { return c.TTSLeaderboard(context.Background()) }},
		{"/w2l/leaderboard", func(c *Client) (models.Payload, error) { return c.W2LLeaderboard(context.Background()) }},
		{"/events/last", func(c *Client) (models.Payload, error) { return c.LastEvents(context.Background()) }},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			c, _ := newTestClient(t, func(r chi.Router) {
				r.Get(tt.route, respond(http.StatusOK, `{"success": true, "route": "`+tt.route+`"}`))
			})

			payload, err := tt.call(c)

			require.NoError(t, err)
			assert.Equal(t, true, payload["success"])
			assert.Equal(t, tt.route, payload["route"])
		})
	}
}

func TestPayloadEndpoints_Failures(t *testing.T) {
	c, _ := newTestClient(t, func(r chi.Router) {
		r.Get("/queue", respond(http.StatusUnauthorized, `{}`))
		r.Get("/events/last", respond(http.StatusBadGateway, `gateway`))
		r.Get("/tts/leaderboard", respond(http.StatusOK, `not json`))
	})
	ctx := context.Background()

	_, err := c.GetQueue(ctx)
	assert.ErrorIs(t, err, ErrUnAuthorized)

	_, err = c.LastEvents(ctx)
	assert.ErrorIs(t, err, ErrRequest)
	assert.Contains(t, err.Error(), "gateway")

	_, err = c.TTSLeaderboard(ctx)
	assert.ErrorIs(t, err, ErrRequest)
	assert.Contains(t, err.Error(), "decode response")
}
