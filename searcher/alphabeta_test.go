package searcher

import (
	"context"
	"testing"

	"gametree/experiments/metrics"
	"gametree/game"

	"github.com/stretchr/testify/require"
)

func TestAlphaBeta(t *testing.T) {
	ctx := context.Background()

	t.Run("matches minimax on the textbook tree", func(t *testing.T) {
		a := NewAlphaBeta[string, int](textbookTree())

		for _, turn := range []game.Player{game.Max, game.Min} {
			for depth := 0; depth <= 3; depth++ {
				want, err := NewMinimax[string, int](textbookTree()).Search(ctx, "root", turn, depth)
				require.NoError(t, err)

				got, err := a.Search(ctx, "root", turn, depth)
				require.NoError(t, err)
				require.Equal(t, want, got, "turn %s depth %d", turn, depth)
			}
		}
	})

	t.Run("prunes siblings once the window closes", func(t *testing.T) {
		collector := metrics.NewCollector()
		a := NewAlphaBeta[string, int](textbookTree(), WithCollector(collector))

		move, value, err := a.BestMove(ctx, "root", game.Max, 2)
		require.NoError(t, err)
		require.Equal(t, 0, move)
		require.Equal(t, game.Score(3), value)

		metric := collector.Complete(value)
		require.Equal(t, int64(11), metric.Nodes, "b2 and b3 are never visited")
		require.Equal(t, int64(7), metric.Leaves)
		require.Equal(t, int64(1), metric.Cutoffs)
	})

	t.Run("fails on a terminal state", func(t *testing.T) {
		a := NewAlphaBeta[string, int](textbookTree())

		_, _, err := a.BestMove(ctx, "c2", game.Min, 1)

		require.ErrorIs(t, err, game.ErrInvalidState)
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		a := NewAlphaBeta[string, int](textbookTree())

		_, _, err := a.BestMove(cancelled, "root", game.Max, 2)

		require.ErrorIs(t, err, context.Canceled)
	})
}
