package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)

	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.Equal(3, b.Count())

	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestLinear(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Millisecond, 0)
	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
}

func TestBackoffCanceled(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(b.Backoff(ctx), context.Canceled)
	req.Equal(0, b.Count())
}

func TestUntil(t *testing.T) {
	req := require.New(t)

	calls := 0
	err := NewLinear(time.Millisecond, 0).Until(context.Background(), func() (bool, error) {
		calls++
		return calls == 3, nil
	})
	req.NoError(err)
	req.Equal(3, calls)

	errBoom := errors.New("boom")
	err = NewLinear(time.Millisecond, 0).Until(context.Background(), func() (bool, error) {
		return false, errBoom
	})
	req.ErrorIs(err, errBoom)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	err = NewLinear(time.Millisecond, 0).Until(ctx, func() (bool, error) { return false, nil })
	req.ErrorIs(err, context.DeadlineExceeded)
}
