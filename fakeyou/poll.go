package fakeyou

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fakeyou/config"
)

// PollOptions bounds a poll loop.
type PollOptions struct {
	// Interval is the wait between two polls. Zero or negative uses
	// config.DefaultPollInterval.
	Interval time.Duration

	// MaxAttempts caps the number of polls. Zero means unbounded.
	MaxAttempts int

	// Timeout caps the total time of the loop, waits included. Zero leaves
	// only the caller's context.
	Timeout time.Duration

	// RequireResult reports a completed job without a download URL or video
	// path as [ErrPathNull]. By default such a job is returned as completed.
	RequireResult bool
}

func (o PollOptions) withDefaults() PollOptions {
	if o.Interval <= 0 {
		o.Interval = config.DefaultPollInterval
	}
	return o
}

type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// pollFunc performs one poll. It reports done once the job is terminal; an
// error stops the loop immediately.
type pollFunc func(ctx context.Context, attempt int) (done bool, err error)

// pollUntil calls poll until it is done, waiting opts.Interval between two
// consecutive calls. There is no wait before the first call or after the
// last one.
func pollUntil(ctx context.Context, endpoint string, opts PollOptions, sleep sleepFunc, poll pollFunc) error {
	opts = opts.withDefaults()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	for attempt := 1; ; attempt++ {
		done, err := poll(ctx, attempt)
		if err != nil || done {
			return err
		}

		if opts.MaxAttempts > 0 && attempt >= opts.MaxAttempts {
			return &Error{
				Kind:     KindPollExhausted,
				Endpoint: endpoint,
				Msg:      fmt.Sprintf("still pending after %d attempts", attempt),
			}
		}

		if err = sleep(ctx, opts.Interval); err != nil {
			return fmt.Errorf("%s: wait between polls: %w", endpoint, err)
		}
	}
}
