package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/crime_pulse/pkg/logger"
)

type fakeSync struct {
	ticks atomic.Int64
	err   error
	fired chan struct{}
}

func newFakeSync(err error) *fakeSync {
	return &fakeSync{err: err, fired: make(chan struct{}, 16)}
}

func (f *fakeSync) PollTick(ctx context.Context) (int, error) {
	f.ticks.Add(1)
	select {
	case f.fired <- struct{}{}:
	default:
	}
	if f.err != nil {
		return 0, f.err
	}
	return 1, nil
}

func waitForTick(t *testing.T, f *fakeSync) {
	select {
	case <-f.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("poll tick did not fire")
	}
}

func TestPoller_TicksPeriodically(t *testing.T) {
	f := newFakeSync(nil)
	p := New(f, 10*time.Millisecond, logger.Silent())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	waitForTick(t, f)
	waitForTick(t, f)
	assert.GreaterOrEqual(t, f.ticks.Load(), int64(2))
}

func TestPoller_KeepsTickingAfterError(t *testing.T) {
	f := newFakeSync(errors.New("connection refused"))
	p := New(f, 10*time.Millisecond, logger.Silent())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	// Ошибка тика не останавливает опрос
	waitForTick(t, f)
	waitForTick(t, f)
	assert.GreaterOrEqual(t, f.ticks.Load(), int64(2))
}

func TestPoller_StopsOnContextCancel(t *testing.T) {
	f := newFakeSync(nil)
	p := New(f, 10*time.Millisecond, logger.Silent())

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	waitForTick(t, f)
	cancel()

	// После отмены контекста новые тики не приходят
	time.Sleep(50 * time.Millisecond)
	before := f.ticks.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, before, f.ticks.Load())
}
