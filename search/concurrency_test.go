// Package search_test verifies that concurrent searches share no state.
package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/arith24/search"
)

// TestConcurrentSearches runs every operation on many hands at once and
// checks each result against a sequential reference.
func TestConcurrentSearches(t *testing.T) {
	all := hands(1, 8)

	type ref struct {
		exists bool
		first  search.Trace
		count  int
	}
	want := make([]ref, len(all))
	for i, values := range all {
		ok, err := search.Exists(values, 24)
		require.NoError(t, err)
		first, _, err := search.FindFirst(values, 24)
		require.NoError(t, err)
		traces, err := search.FindAll(values, 24)
		require.NoError(t, err)
		want[i] = ref{exists: ok, first: first, count: len(traces)}
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(16)
	got := make([]ref, len(all))
	for i, values := range all {
		i, values := i, values
		g.Go(func() error {
			ok, err := search.Exists(values, 24, search.WithContext(ctx))
			if err != nil {
				return err
			}
			first, _, err := search.FindFirst(values, 24, search.WithContext(ctx))
			if err != nil {
				return err
			}
			traces, err := search.FindAll(values, 24, search.WithContext(ctx))
			if err != nil {
				return err
			}
			got[i] = ref{exists: ok, first: first, count: len(traces)}

			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, want, got)
}
