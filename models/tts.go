package models

// TTS poll statuses.
const (
	TTSStatusPending    = "pending"
	TTSStatusInProgress = "in_progress"
	TTSStatusDone       = "done"
	TTSStatusDead       = "dead"
)

// TTSRequest is the body of POST tts/inference.
type TTSRequest struct {
	IdempotencyToken string `json:"uuid_idempotency_token"`
	TTSModelToken    string `json:"tts_model_token"`
	InferenceText    string `json:"inference_text"`
}

// TTSJob is the result of submitting a TTS job. InferenceJobToken is the
// poll ID; IdempotencyToken is the value the job was submitted with.
type TTSJob struct {
	Success           bool   `json:"success"`
	InferenceJobToken string `json:"inference_job_token"`
	IdempotencyToken  string `json:"-"`
}

// TTSPoll is one response of tts/poll/{id}. Status is a pointer so that a
// missing field can be told apart from an empty one.
type TTSPoll struct {
	Status      *string `json:"status"`
	DownloadURL string  `json:"download_url,omitempty"`
}

// TTSStatus is the summary of a single poll. DownloadURL is empty until
// Completed is true.
type TTSStatus struct {
	Completed   bool
	DownloadURL string
}

// SayRequest is the body of POST tts/say.
type SayRequest struct {
	Voice string `json:"voice"`
	Text  string `json:"text"`
}

// SayResult is the body returned by tts/say.
type SayResult struct {
	Success bool   `json:"success"`
	PollID  string `json:"poll_id"`
}
