package sco_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosco/sco"
)

func TestRunOnThreadsDrainsEachIndependently(t *testing.T) {
	const threads = 4
	var completed int64

	err := sco.RunOnThreads(threads, func(thread int) (sco.Descriptor, error) {
		return sco.Descriptor{
			Entry: func(ctx context.Context, _ any) {
				for i := 0; i < 10; i++ {
					sco.Go(ctx, sco.Descriptor{
						Entry: func(context.Context, any) {},
						Cleanup: func([]byte, any) {
							atomic.AddInt64(&completed, 1)
						},
					})
				}
			},
		}, nil
	})

	require.NoError(t, err)
	require.EqualValues(t, threads*10, completed)
}

func TestRunOnThreadsPropagatesBuildError(t *testing.T) {
	boom := errors.New("boom")
	err := sco.RunOnThreads(2, func(thread int) (sco.Descriptor, error) {
		if thread == 1 {
			return sco.Descriptor{}, boom
		}
		return sco.Descriptor{Entry: func(context.Context, any) {}}, nil
	})
	require.ErrorIs(t, err, boom)
}
