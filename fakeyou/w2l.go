// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeyou

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-fakeyou/models"
	"github.com/dustin/go-humanize"
)

// MakeW2LJob uploads file as multipart form data together with
// templateToken to w2l/inference and returns the inference job token. Only
// the base of name is sent as the file name.
//
// A 400 or 404 whose body mentions the template is reported as
// [ErrW2lTemplateTokenWrong]; any other non-200 status is [ErrRequest].
func (c *Client) MakeW2LJob(ctx context.Context, name string, file io.Reader, templateToken string) (string, error) {
	const endpoint = "w2l/inference"

	resp, err := c.request(ctx).
		SetFileReader("file", filepath.Base(name), file).
		SetFormData(map[string]string{"template_token": templateToken}).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("w2l inference request: %w", err)
	}
	c.logResponse(endpoint, resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusNotFound:
		if strings.Contains(strings.ToLower(string(resp.Body())), "template") {
			return "", &Error{
				Kind:       KindW2lTemplateTokenWrong,
				Endpoint:   endpoint,
				StatusCode: resp.StatusCode(),
				Body:       responseText(resp),
			}
		}
	}
	if err = requireOK(endpoint, resp, nil); err != nil {
		return "", err
	}

	var inference models.W2LInference
	if err = decodeBody(endpoint, resp, &inference); err != nil {
		return "", err
	}
	if inference.InferenceJobToken == "" {
		return "", &Error{Kind: KindRequest, Endpoint: endpoint, Body: responseText(resp), Msg: "response has no inference_job_token"}
	}

	c.logger.Debug().Str("job_token", inference.InferenceJobToken).Msg("w2l job submitted")
	return inference.InferenceJobToken, nil
}

// MakeW2LJobFromPath opens the file at path and submits it with
// [Client.MakeW2LJob].
func (c *Client) MakeW2LJobFromPath(ctx context.Context, path, templateToken string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open w2l upload: %w", err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		c.logger.Debug().
			Str("file", info.Name()).
			Str("size", humanize.Bytes(uint64(info.Size()))).
			Msg("uploading w2l source")
	}

	return c.MakeW2LJob(ctx, path, f, templateToken)
}

// W2LPoll blocks until the lip-sync job jobToken reaches a terminal status,
// polling with the client's default bounds. See [Client.W2LPollWith].
func (c *Client) W2LPoll(ctx context.Context, jobToken string) (models.W2LJob, error) {
	return c.W2LPollWith(ctx, jobToken, c.poll)
}

// W2LPollWith GETs w2l/job/{jobToken} while the job is "started" or
// "pending", waiting opts.Interval between polls, and returns the payload
// once the status is "complete_success".
//
// Every failure matches [ErrRequest]. A "dead" job is also [ErrDead]; any
// other terminal status is reported naming it. Non-200 responses end the
// loop, a 404 also as [ErrNotFound]. A completed job without a video path
// is returned as is unless opts.RequireResult is set, then it is
// [ErrPathNull].
func (c *Client) W2LPollWith(ctx context.Context, jobToken string, opts PollOptions) (models.W2LJob, error) {
	endpoint := "w2l/job/" + url.PathEscape(jobToken)
	var job models.W2LJob

	err := pollUntil(ctx, endpoint, opts, c.sleep, func(ctx context.Context, attempt int) (bool, error) {
		var current models.W2LJob
		if err := c.get(ctx, endpoint, &current, requireOK, w2lJobFailures); err != nil {
			return false, err
		}

		status := current.State.Status
		c.logger.Debug().
			Str("job_token", jobToken).
			Str("status", status).
			Int("attempt", attempt).
			Msg("w2l job polled")

		switch status {
		case models.W2LStatusStarted, models.W2LStatusPending:
			return false, nil
		case models.W2LStatusCompleteSuccess:
			if path := current.State.MaybePublicBucketVideoPath; opts.RequireResult && (path == nil || *path == "") {
				return false, &Error{Kind: KindPathNull, Endpoint: endpoint}
			}
			job = current
			return true, nil
		case models.W2LStatusDead:
			return false, &Error{Kind: KindDead, Endpoint: endpoint, Msg: "w2l job failed with status: dead"}
		default:
			return false, &Error{
				Kind:     KindRequest,
				Endpoint: endpoint,
				Msg:      fmt.Sprintf("w2l job failed with status: %s", status),
			}
		}
	})
	if err != nil {
		return models.W2LJob{}, err
	}

	return job, nil
}

// LipSync submits file with [Client.MakeW2LJob] and blocks in
// [Client.W2LPoll] until the job is done.
func (c *Client) LipSync(ctx context.Context, name string, file io.Reader, templateToken string) (models.W2LJob, error) {
	jobToken, err := c.MakeW2LJob(ctx, name, file, templateToken)
	if err != nil {
		return models.W2LJob{}, err
	}
	return c.W2LPoll(ctx, jobToken)
}

// W2LFromMedia starts a lip-sync conversion of already uploaded media
// through POST w2l.
func (c *Client) W2LFromMedia(ctx context.Context, audioID, videoID string) (models.Payload, error) {
	const endpoint = "w2l"
	var payload models.Payload

	resp, err := c.request(ctx).
		SetBody(models.W2LMediaRequest{AudioID: audioID, VideoID: videoID}).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("w2l request: %w", err)
	}
	c.logResponse(endpoint, resp)

	if err = mapHTTPError(endpoint, resp, resultFailures); err != nil {
		return nil, err
	}
	if err = decodeBody(endpoint, resp, &payload); err != nil {
		return nil, err
	}

	return payload, nil
}
