package fakeyou

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-fakeyou/models"
)

// MakeTTSJob submits text for synthesis with the voice modelToken. Every call
// sends a fresh random UUID as the idempotency token, so repeated calls with
// the same arguments create distinct jobs. The returned job carries that
// token and the inference job token to poll with.
//
// Returns [ErrRequest] on HTTP 400, [ErrTooManyRequests] on 429, and
// [ErrRequest] for any other non-200 status.
func (c *Client) MakeTTSJob(ctx context.Context, text, modelToken string) (models.TTSJob, error) {
	const endpoint = "tts/inference"
	var job models.TTSJob

	req := models.TTSRequest{
		IdempotencyToken: c.tokens.Generate(),
		TTSModelToken:    modelToken,
		InferenceText:    text,
	}

	resp, err := c.request(ctx).SetBody(req).Post(endpoint)
	if err != nil {
		return job, fmt.Errorf("tts inference request: %w", err)
	}
	c.logResponse(endpoint, resp)

	if err = requireOK(endpoint, resp, ttsInferenceFailures); err != nil {
		return job, err
	}
	if err = decodeBody(endpoint, resp, &job); err != nil {
		return job, err
	}
	job.IdempotencyToken = req.IdempotencyToken

	c.logger.Debug().
		Str("idempotency_token", job.IdempotencyToken).
		Str("job_token", job.InferenceJobToken).
		Msg("tts job submitted")

	return job, nil
}

// TTSPoll performs one GET against tts/poll/{pollID}. The response must
// carry a status field. An unknown poll ID is reported as
// [ErrTtsResultNotFound].
func (c *Client) TTSPoll(ctx context.Context, pollID string) (models.TTSPoll, error) {
	endpoint := "tts/poll/" + url.PathEscape(pollID)
	var poll models.TTSPoll

	if err := c.get(ctx, endpoint, &poll, requireOK, ttsPollFailures); err != nil {
		return poll, err
	}
	if poll.Status == nil {
		return poll, &Error{
			Kind:     KindRequest,
			Endpoint: endpoint,
			Msg:      fmt.Sprintf("invalid response received for poll id %s", pollID),
		}
	}

	return poll, nil
}

// TTSStatus performs exactly one poll and summarises it with
// [StatusFromPoll]. Repeating the check is up to the caller, see [WaitTTS].
func (c *Client) TTSStatus(ctx context.Context, pollID string) (models.TTSStatus, error) {
	poll, err := c.TTSPoll(ctx, pollID)
	if err != nil {
		return models.TTSStatus{}, err
	}
	return StatusFromPoll(poll)
}

// StatusFromPoll maps one poll response onto a status summary:
//   - "done" is completed with the download URL, which may be empty;
//   - "pending" and "in_progress" are not completed;
//   - "dead" is [ErrDead];
//   - anything else, including a missing status, is [ErrRequest].
func StatusFromPoll(poll models.TTSPoll) (models.TTSStatus, error) {
	const endpoint = "tts/poll"

	if poll.Status == nil {
		return models.TTSStatus{}, &Error{Kind: KindRequest, Endpoint: endpoint, Msg: "response has no status"}
	}

	switch status := *poll.Status; status {
	case models.TTSStatusDone:
		return models.TTSStatus{Completed: true, DownloadURL: poll.DownloadURL}, nil
	case models.TTSStatusInProgress, models.TTSStatusPending:
		return models.TTSStatus{Completed: false}, nil
	case models.TTSStatusDead:
		return models.TTSStatus{}, &Error{Kind: KindDead, Endpoint: endpoint}
	default:
		return models.TTSStatus{}, &Error{
			Kind:     KindRequest,
			Endpoint: endpoint,
			Msg:      fmt.Sprintf("unexpected status received: %s", status),
		}
	}
}

// Say asks the service to speak text with voice through POST tts/say and
// returns the poll ID of the resulting request.
func (c *Client) Say(ctx context.Context, voice, text string) (models.SayResult, error) {
	const endpoint = "tts/say"
	var result models.SayResult

	resp, err := c.request(ctx).
		SetBody(models.SayRequest{Voice: voice, Text: text}).
		Post(endpoint)
	if err != nil {
		return result, fmt.Errorf("tts say request: %w", err)
	}
	c.logResponse(endpoint, resp)

	if err = requireOK(endpoint, resp, nil); err != nil {
		return result, err
	}
	if err = decodeBody(endpoint, resp, &result); err != nil {
		return result, err
	}

	return result, nil
}

// WaitTTS polls pollID with the client's default poll bounds until the job
// completes. See the package-level [WaitTTS].
func (c *Client) WaitTTS(ctx context.Context, pollID string) (models.TTSStatus, error) {
	return waitTTS(ctx, c, pollID, c.poll, c.sleep)
}
