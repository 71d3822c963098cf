package sched

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchedulerRunSingleCoroutine(t *testing.T) {
	s := NewScheduler()
	var ran, cleaned bool
	s.Run(Descriptor{
		Entry: func(ctx context.Context, _ any) {
			ran = true
			require.NotNil(t, Current(ctx))
		},
		Cleanup: func(_ []byte, _ any) { cleaned = true },
	})
	require.True(t, ran)
	require.True(t, cleaned)
	require.Equal(t, 0, s.InfoScheduled())
	require.Equal(t, 0, s.InfoRunning())
	require.Equal(t, 0, s.InfoPaused())
	require.False(t, s.Active())
}

func TestSchedulerIDIsStableAndNonzero(t *testing.T) {
	s := NewScheduler()
	var id, idAfterYield int64
	s.Run(Descriptor{
		Entry: func(ctx context.Context, _ any) {
			id = Current(ctx).ID()
			Yield(ctx)
			idAfterYield = ID(ctx)
		},
	})
	s.ResumeZero()
	require.NotZero(t, id)
	require.Equal(t, id, idAfterYield)
}

func TestSchedulerCleanupRunsExactlyOnce(t *testing.T) {
	s := NewScheduler()
	var cleanupCount int
	s.Run(Descriptor{
		Entry: func(ctx context.Context, _ any) {
			Yield(ctx)
		},
		Cleanup: func(_ []byte, _ any) { cleanupCount++ },
	})
	require.Equal(t, 0, cleanupCount)
	require.Equal(t, 1, s.InfoScheduled())

	// The coroutine above yielded once and sits scheduled; a second resume
	// lets it run to completion and fires Cleanup exactly once.
	s.ResumeZero()
	require.Equal(t, 1, cleanupCount)
	require.False(t, s.Active())
}

func TestSchedulerPauseAndResume(t *testing.T) {
	s := NewScheduler()
	var id int64
	var resumed bool
	s.Run(Descriptor{
		Entry: func(ctx context.Context, _ any) {
			id = Current(ctx).ID()
			Pause(ctx)
			resumed = true
		},
	})
	require.Equal(t, 1, s.InfoPaused())
	require.True(t, s.Active())

	s.Resume(id)
	require.Equal(t, 1, s.InfoScheduled())
	require.False(t, resumed)

	s.ResumeZero()
	require.True(t, resumed)
	require.False(t, s.Active())
}

func TestSchedulerResumeUnknownIDIsNoop(t *testing.T) {
	s := NewScheduler()
	require.NotPanics(t, func() { s.Resume(99999) })
}

func TestSchedulerDetachAndAttachAcrossSchedulers(t *testing.T) {
	a := NewScheduler()
	b := NewScheduler()

	var id int64
	var ran bool
	a.Run(Descriptor{
		Entry: func(ctx context.Context, _ any) {
			id = Current(ctx).ID()
			Pause(ctx)
			ran = true
		},
	})
	require.Equal(t, 1, a.InfoPaused())

	a.Detach(id)
	require.Equal(t, 0, a.InfoPaused())
	require.Equal(t, 1, InfoDetached())

	b.Attach(id)
	require.Equal(t, 0, InfoDetached())
	require.Equal(t, 1, b.InfoPaused())

	b.Resume(id)
	b.ResumeZero()
	require.True(t, ran)
}

func TestSchedulerExitBypassesRunQueue(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.Run(Descriptor{
		Entry: func(ctx context.Context, _ any) {
			Go(ctx, Descriptor{
				Entry: func(ctx context.Context, _ any) {
					order = append(order, "child")
				},
			})
			order = append(order, "parent-before-exit")
			Exit(ctx)
			order = append(order, "unreachable")
		},
	})
	require.Equal(t, []string{"child", "parent-before-exit"}, order)
	require.False(t, s.Active())
}

func TestSchedulerEarlyExitLeavesSiblingsRunnable(t *testing.T) {
	s := NewScheduler()
	var siblingRan bool
	s.Run(Descriptor{
		Entry: func(ctx context.Context, _ any) {
			Go(ctx, Descriptor{
				Entry: func(ctx context.Context, _ any) {
					Yield(ctx)
					siblingRan = true
				},
			})
			Exit(ctx)
		},
	})
	require.False(t, siblingRan)
	require.True(t, s.Active())

	for s.Active() {
		s.Resume(0)
	}
	require.True(t, siblingRan)
}
