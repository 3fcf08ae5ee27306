package fakeyou

import (
	"context"

	"github.com/MKhiriev/go-fakeyou/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/fakeyou_mock.go -package=mock

// TTSStatusChecker performs one TTS status check. *Client implements it;
// [WaitTTS] accepts any implementation.
type TTSStatusChecker interface {
	// TTSStatus polls pollID once. A nil error with Completed false means
	// the job is still pending.
	TTSStatus(ctx context.Context, pollID string) (models.TTSStatus, error)
}

var _ TTSStatusChecker = (*Client)(nil)
