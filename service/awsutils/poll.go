package awsutils

import (
	"context"
	"errors"
	"time"
)

// ErrPollTimeout is returned by Poll when the deadline expires before the
// polled operation reaches a terminal state
var ErrPollTimeout = errors.New("timed out waiting for operation to complete")

// PollPolicy configures backoff and deadline of a Poll call
type PollPolicy struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	Multiplier      float64       `yaml:"multiplier"`
	Jitter          float64       `yaml:"jitter"`
	Timeout         time.Duration `yaml:"timeout"`
}

// DefaultPollPolicy is used when no policy is configured
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		InitialInterval: 5 * time.Second,
		MaxInterval:     time.Minute,
		Multiplier:      2,
		Jitter:          0.2,
		Timeout:         30 * time.Minute,
	}
}

func (p PollPolicy) NewBackoff() Backoff {
	return NewExponentialBackoff(p.InitialInterval, p.MaxInterval, p.Jitter, p.Multiplier)
}

// CheckFunc inspects the current status of a long-running operation.
// Returning done=true or a non-nil error stops polling.
type CheckFunc func(ctx context.Context) (done bool, err error)

// Poll calls check until it reports done, returns an error, the timeout
// expires or ctx is cancelled. Waits between calls follow backoff.
// A zero timeout means no deadline other than ctx.
func Poll(ctx context.Context, backoff Backoff, timeout time.Duration, check CheckFunc) error {
	pollCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	for {
		done, err := check(pollCtx)
		if err != nil {
			if pollCtx.Err() != nil {
				return pollError(ctx, pollCtx)
			}
			return err
		}
		if done {
			return nil
		}

		timer := time.NewTimer(backoff.Duration())
		select {
		case <-pollCtx.Done():
			timer.Stop()
			return pollError(ctx, pollCtx)
		case <-timer.C:
		}
	}
}

// PollWithPolicy is Poll with backoff and timeout taken from policy
func PollWithPolicy(ctx context.Context, policy PollPolicy, check CheckFunc) error {
	return Poll(ctx, policy.NewBackoff(), policy.Timeout, check)
}

func pollError(parent context.Context, pollCtx context.Context) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(pollCtx.Err(), context.DeadlineExceeded) {
		return ErrPollTimeout
	}
	return pollCtx.Err()
}
