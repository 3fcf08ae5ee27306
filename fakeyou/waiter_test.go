package fakeyou

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-fakeyou/internal/mock"
	"github.com/MKhiriev/go-fakeyou/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWaitTTS_PollsUntilCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockTTSStatusChecker(ctrl)

	gomock.InOrder(
		checker.EXPECT().TTSStatus(gomock.Any(), "JTINF:1").Return(models.TTSStatus{}, nil).Times(2),
		checker.EXPECT().TTSStatus(gomock.Any(), "JTINF:1").
			Return(models.TTSStatus{Completed: true, DownloadURL: "https://cdn/x.wav"}, nil),
	)

	rec := &sleepRecorder{}
	status, err := waitTTS(context.Background(), checker, "JTINF:1", PollOptions{Interval: time.Second}, rec.sleep)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.wav", status.DownloadURL)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, rec.recorded())
}

func TestWaitTTS_CheckErrorEndsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockTTSStatusChecker(ctrl)

	checker.EXPECT().TTSStatus(gomock.Any(), "JTINF:1").
		Return(models.TTSStatus{}, &Error{Kind: KindDead, Endpoint: "tts/poll"})

	rec := &sleepRecorder{}
	_, err := waitTTS(context.Background(), checker, "JTINF:1", PollOptions{}, rec.sleep)

	assert.ErrorIs(t, err, ErrDead)
	assert.Empty(t, rec.recorded())
}

func TestWaitTTS_Exhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockTTSStatusChecker(ctrl)

	checker.EXPECT().TTSStatus(gomock.Any(), gomock.Any()).Return(models.TTSStatus{}, nil).Times(3)

	_, err := WaitTTS(context.Background(), checker, "JTINF:1", PollOptions{Interval: time.Millisecond, MaxAttempts: 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPollExhausted)
}

func TestWaitTTS_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockTTSStatusChecker(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	checker.EXPECT().TTSStatus(gomock.Any(), "JTINF:1").
		DoAndReturn(func(context.Context, string) (models.TTSStatus, error) {
			cancel()
			return models.TTSStatus{}, nil
		})

	_, err := WaitTTS(ctx, checker, "JTINF:1", PollOptions{Interval: time.Hour})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitTTS_RequireResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockTTSStatusChecker(ctrl)

	checker.EXPECT().TTSStatus(gomock.Any(), "JTINF:1").Return(models.TTSStatus{Completed: true}, nil)

	_, err := WaitTTS(context.Background(), checker, "JTINF:1", PollOptions{RequireResult: true})

	assert.ErrorIs(t, err, ErrPathNull)
}
