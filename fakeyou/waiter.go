package fakeyou

import (
	"context"

	"github.com/MKhiriev/go-fakeyou/models"
)

// WaitTTS repeats checker.TTSStatus for pollID until the job completes,
// waiting opts.Interval between checks. The first error from a check ends
// the loop; exceeding opts.MaxAttempts is [ErrPollExhausted]. With
// opts.RequireResult a completed job without a download URL is [ErrPathNull].
func WaitTTS(ctx context.Context, checker TTSStatusChecker, pollID string, opts PollOptions) (models.TTSStatus, error) {
	return waitTTS(ctx, checker, pollID, opts, sleepContext)
}

func waitTTS(ctx context.Context, checker TTSStatusChecker, pollID string, opts PollOptions, sleep sleepFunc) (models.TTSStatus, error) {
	var status models.TTSStatus

	endpoint := "tts/poll/" + pollID
	err := pollUntil(ctx, endpoint, opts, sleep, func(ctx context.Context, _ int) (bool, error) {
		current, err := checker.TTSStatus(ctx, pollID)
		if err != nil {
			return false, err
		}
		if current.Completed && current.DownloadURL == "" && opts.RequireResult {
			return false, &Error{Kind: KindPathNull, Endpoint: endpoint}
		}
		status = current
		return current.Completed, nil
	})
	if err != nil {
		return models.TTSStatus{}, err
	}

	return status, nil
}
