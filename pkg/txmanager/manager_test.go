package txmanager

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSerializable_Exclusive(t *testing.T) {
	m := NewTransactionManager()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					cur := atomic.LoadInt32(&maxInside)
					if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}

func TestDoSerializable_PropagatesError(t *testing.T) {
	m := NewTransactionManager()
	boom := errors.New("boom")

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, InTransaction(ctx))
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestDoSerializable_Nested(t *testing.T) {
	m := NewTransactionManager()

	called := false
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(context.Context) error {
			called = true
			return nil
		})
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestDoSerializable_CancelledWhileWaiting(t *testing.T) {
	m := NewTransactionManager()

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = m.DoSerializable(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := m.DoSerializable(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrAcquire)
	close(release)
}
