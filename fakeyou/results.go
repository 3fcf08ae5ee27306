package fakeyou

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-fakeyou/models"
)

// DeleteTTSResult deletes the TTS result id. It returns true on any 2xx
// status.
func (c *Client) DeleteTTSResult(ctx context.Context, id string) (bool, error) {
	return c.delete(ctx, "tts/"+url.PathEscape(id))
}

// DeleteW2LResult deletes the lip-sync result id. It returns true on any 2xx
// status.
func (c *Client) DeleteW2LResult(ctx context.Context, id string) (bool, error) {
	return c.delete(ctx, "w2l/"+url.PathEscape(id))
}

// GetUser returns the public profile of the user id. An unknown user is
// [ErrUserNotFound].
func (c *Client) GetUser(ctx context.Context, id string) (models.User, error) {
	var profile models.UserProfile
	if err := c.get(ctx, "users/"+url.PathEscape(id), &profile, mapHTTPError, userFailures); err != nil {
		return models.User{}, err
	}
	return profile.User, nil
}

// GetQueue returns the current state of the processing queues.
func (c *Client) GetQueue(ctx context.Context) (models.Payload, error) {
	return c.payload(ctx, "queue")
}

// TTSLeaderboard returns the TTS contributor leaderboard.
func (c *Client) TTSLeaderboard(ctx context.Context) (models.Payload, error) {
	return c.payload(ctx, "tts/leaderboard")
}

// W2LLeaderboard returns the lip-sync contributor leaderboard.
func (c *Client) W2LLeaderboard(ctx context.Context) (models.Payload, error) {
	return c.payload(ctx, "w2l/leaderboard")
}

// LastEvents returns the most recent platform events.
func (c *Client) LastEvents(ctx context.Context) (models.Payload, error) {
	return c.payload(ctx, "events/last")
}

func (c *Client) payload(ctx context.Context, endpoint string) (models.Payload, error) {
	var payload models.Payload
	if err := c.get(ctx, endpoint, &payload, mapHTTPError, resultFailures); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) delete(ctx context.Context, endpoint string) (bool, error) {
	resp, err := c.request(ctx).Delete(endpoint)
	if err != nil {
		return false, fmt.Errorf("delete %s request: %w", endpoint, err)
	}
	c.logResponse(endpoint, resp)

	if err = mapHTTPError(endpoint, resp, resultFailures); err != nil {
		return false, err
	}
	return true, nil
}
