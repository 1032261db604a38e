package schedjobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalJobFiresWhenDue(t *testing.T) {
	s := NewScheduler(context.Background())
	var runs atomic.Int32
	err := s.AddIntervalJob(&IntervalJob{
		ID:    "refresh",
		Every: time.Hour,
		Task: func() error {
			runs.Add(1)
			return nil
		},
	})
	require.NoError(t, err)

	// not due yet
	s.RunDue(time.Now())
	assert.Never(t, func() bool { return runs.Load() > 0 }, 50*time.Millisecond, 10*time.Millisecond)

	s.RunDue(time.Now().Add(time.Hour + time.Second))
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)

	// reschedules one interval ahead, not immediately
	s.RunDue(time.Now().Add(time.Hour + 2*time.Second))
	assert.Never(t, func() bool { return runs.Load() > 1 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestIntervalJobRejectsZeroInterval(t *testing.T) {
	s := NewScheduler(context.Background())
	err := s.AddIntervalJob(&IntervalJob{ID: "bad", Task: func() error { return nil }})
	require.Error(t, err)
	assert.Empty(t, s.IntervalJobIDs())
}

func TestDeleteIntervalJob(t *testing.T) {
	s := NewScheduler(context.Background())
	require.NoError(t, s.AddIntervalJob(&IntervalJob{ID: "a", Every: time.Minute, Task: func() error { return nil }}))
	require.NoError(t, s.AddIntervalJob(&IntervalJob{ID: "b", Every: time.Minute, Task: func() error { return nil }}))

	s.DeleteIntervalJob("a")
	assert.Equal(t, []string{"b"}, s.IntervalJobIDs())
}

func TestOneTimeJobFiresOnce(t *testing.T) {
	s := NewScheduler(context.Background())
	var runs atomic.Int32
	done := make(chan struct{})
	s.AddOneTimeJob(&OneTimeJob{
		ID:       "once",
		ExecTime: time.Now().Add(-time.Second),
		Task: func() error {
			runs.Add(1)
			return nil
		},
		OnFinished: func(error) { close(done) },
	})

	s.RunDue(time.Now())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("one-time job never ran")
	}

	// consumed on first due pass
	s.RunDue(time.Now().Add(time.Minute))
	assert.Never(t, func() bool { return runs.Load() > 1 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestOnFinishedReceivesTaskError(t *testing.T) {
	s := NewScheduler(context.Background())
	errCh := make(chan error, 1)
	require.NoError(t, s.AddIntervalJob(&IntervalJob{
		ID:         "failing",
		Every:      time.Minute,
		Task:       func() error { return assert.AnError },
		OnFinished: func(err error) { errCh <- err },
	}))
	s.RunDue(time.Now().Add(2 * time.Minute))
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, assert.AnError)
	case <-time.After(time.Second):
		t.Fatal("OnFinished never called")
	}
}
