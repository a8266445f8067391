package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpired(context.Context) (int64, error) {
	p.calls.Add(1)
	return 3, p.err
}

func TestPurgeSessionsRunsOnceWithoutInterval(t *testing.T) {
	purger := &countingPurger{}
	PurgeSessions(context.Background(), purger, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, int32(1), purger.calls.Load())
}

func TestPurgeSessionsRepeatsUntilCancelled(t *testing.T) {
	purger := &countingPurger{err: errors.New("db down")}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		PurgeSessions(ctx, purger, 5*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
		close(done)
	}()

	assert.Eventually(t, func() bool { return purger.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purge loop did not stop")
	}
}
