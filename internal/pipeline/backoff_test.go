package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffOrStop_Doubles(t *testing.T) {
	p := &Pipeline{}
	ctx := context.Background()

	backoff := time.Millisecond
	assert.True(t, p.backoffOrStop(ctx, &backoff))
	assert.Equal(t, 2*time.Millisecond, backoff)

	backoff = 0
	assert.True(t, p.backoffOrStop(ctx, &backoff))
	assert.Equal(t, time.Duration(0), backoff)
}

func TestBackoffOrStop_CancelledMidSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &Pipeline{}
	backoff := maxBackoff - time.Second
	done := make(chan bool, 1)
	go func() { done <- p.backoffOrStop(ctx, &backoff) }()

	time.Sleep(10 * time.Millisecond)
	cancel()
	assert.False(t, <-done)
	assert.Equal(t, maxBackoff-time.Second, backoff)
}

func TestBackoffOrStop_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &Pipeline{}
	backoff := initialBackoff
	assert.False(t, p.backoffOrStop(ctx, &backoff))
	assert.Equal(t, initialBackoff, backoff)
}
