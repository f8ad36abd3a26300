package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errThrottled = errors.New("throttled")

func TestDo_SuccessImmediate(t *testing.T) {
	err := Do(func() error { return nil }, Policy{
		InitialInterval: 5 * time.Millisecond,
		MaxElapsedTime:  100 * time.Millisecond,
	})
	assert.NoError(t, err)
}

func TestDo_RetryThenSuccess(t *testing.T) {
	var calls int
	var retries int

	err := Do(func() error {
		if calls < 2 {
			calls++
			return errThrottled
		}
		return nil
	}, Policy{
		InitialInterval: 2 * time.Millisecond,
		MaxElapsedTime:  200 * time.Millisecond,
		OnRetry: func(err error, next time.Duration) {
			retries++
			assert.Error(t, err)
			assert.Greater(t, next, time.Duration(0))
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, retries)
}

func TestDo_NonRetryableFailsImmediately(t *testing.T) {
	permanent := errors.New("bad credentials")
	var calls int

	err := Do(func() error {
		calls++
		return permanent
	}, Policy{
		InitialInterval: 2 * time.Millisecond,
		MaxElapsedTime:  200 * time.Millisecond,
		RetryIf:         func(err error) bool { return errors.Is(err, errThrottled) },
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls, "non-retryable errors must not be retried")
}

func TestDo_InvalidConfig(t *testing.T) {
	err := Do(func() error { return nil }, Policy{InitialInterval: 0})
	assert.Error(t, err)
}

func TestDo_ExhaustedByTime(t *testing.T) {
	err := Do(func() error { return errThrottled }, Policy{
		InitialInterval: 5 * time.Millisecond,
		MaxElapsedTime:  15 * time.Millisecond,
	})
	assert.Error(t, err)
}
