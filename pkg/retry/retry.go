package retry

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type Operation func() error

// Policy controls exponential retry of an operation. RetryIf decides which
// errors are worth retrying; everything else fails immediately. The transaction
// fetcher never retries on its own, so this lives entirely on the caller side.
type Policy struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
	RetryIf         func(error) bool
	OnRetry         func(error, time.Duration)
}

func Do(fn Operation, p Policy) error {
	if p.InitialInterval <= 0 {
		return errors.New("initial interval must be > 0")
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.InitialInterval
	if p.MaxElapsedTime > 0 {
		bo.MaxElapsedTime = p.MaxElapsedTime
	}

	wrapped := func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if p.RetryIf != nil && !p.RetryIf(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	err := backoff.RetryNotify(wrapped, bo, func(err error, next time.Duration) {
		if p.OnRetry != nil {
			p.OnRetry(err, next)
		}
	})

	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Err
	}
	return err
}
