package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_InvalidSpec(t *testing.T) {
	s := New(context.Background())

	err := s.Add(Entry{Name: "dispatch", Spec: "every five minutes", Job: func(context.Context) (any, error) { return nil, nil }})
	assert.Error(t, err)
}

func TestRun_RespectsTimeout(t *testing.T) {
	s := New(context.Background())

	var deadline bool
	s.run(Entry{
		Name:    "purge",
		Timeout: time.Minute,
		Job: func(ctx context.Context) (any, error) {
			_, deadline = ctx.Deadline()
			return nil, errors.New("boom")
		},
	})

	assert.True(t, deadline)
}

func TestScheduler_RunsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(ctx)

	var runs atomic.Int32
	require.NoError(t, s.Add(Entry{
		Name: "dispatch",
		Spec: "@every 1s",
		Job: func(context.Context) (any, error) {
			runs.Add(1)
			return map[string]int{"processed": 0}, nil
		},
	}))

	s.Start()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	s.Stop(stopCtx)
}
