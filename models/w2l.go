package models

import "time"

// W2L job statuses.
const (
	W2LStatusPending         = "pending"
	W2LStatusStarted         = "started"
	W2LStatusCompleteSuccess = "complete_success"
	W2LStatusCompleteFailure = "complete_failure"
	W2LStatusAttemptFailed   = "attempt_failed"
	W2LStatusDead            = "dead"
)

// W2LInference is the body returned by POST w2l/inference.
type W2LInference struct {
	Success           bool   `json:"success"`
	InferenceJobToken string `json:"inference_job_token"`
}

// W2LJobState is the state object of a lip-sync job.
type W2LJobState struct {
	JobToken                   string    `json:"job_token"`
	Status                     string    `json:"status"`
	MaybeExtraStatus           *string   `json:"maybe_extra_status_description"`
	AttemptCount               int       `json:"attempt_count"`
	MaybeResultToken           *string   `json:"maybe_result_token"`
	MaybePublicBucketVideoPath *string   `json:"maybe_public_bucket_video_path"`
	Title                      string    `json:"title"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// W2LJob is the body of w2l/job/{id}.
type W2LJob struct {
	Success bool        `json:"success"`
	State   W2LJobState `json:"state"`
}

// W2LMediaRequest is the body of POST w2l.
type W2LMediaRequest struct {
	AudioID string `json:"audio_id"`
	VideoID string `json:"video_id"`
}
