package coins

import (
	"testing"

	"gametree/game"

	"github.com/stretchr/testify/require"
)

func TestNewRules(t *testing.T) {
	t.Run("rejects non-positive coins", func(t *testing.T) {
		_, err := NewRules([]int{3, 0, 2})

		require.ErrorIs(t, err, ErrInvalidCoin)
	})

	t.Run("keeps its own copy of the coins", func(t *testing.T) {
		row := []int{3, 9, 1, 2}
		rules, err := NewRules(row)
		require.NoError(t, err)

		row[0] = 100

		require.Equal(t, []int{3, 9, 1, 2}, rules.InitialState().Coins)
	})
}

func TestPlay(t *testing.T) {
	rules, err := NewRules([]int{3, 9, 1, 2})
	require.NoError(t, err)
	start := rules.InitialState()

	t.Run("taking the left coin credits the mover", func(t *testing.T) {
		next := rules.Play(start, TakeLeft, game.Max)

		require.Equal(t, []int{9, 1, 2}, next.Coins)
		require.Equal(t, 3, next.MaxScore)
		require.Equal(t, 0, next.MinScore)
	})

	t.Run("taking the right coin credits the mover", func(t *testing.T) {
		next := rules.Play(start, TakeRight, game.Min)

		require.Equal(t, []int{3, 9, 1}, next.Coins)
		require.Equal(t, 0, next.MaxScore)
		require.Equal(t, 2, next.MinScore)
	})

	t.Run("leaves the input state unchanged", func(t *testing.T) {
		state := State{Coins: []int{4, 5, 6}, MaxScore: 1, MinScore: 2}

		next := rules.Play(state, TakeLeft, game.Max)
		next.Coins[0] = 42

		require.Equal(t, State{Coins: []int{4, 5, 6}, MaxScore: 1, MinScore: 2}, state)
	})
}

func TestMovesAndTerminal(t *testing.T) {
	rules, err := NewRules([]int{5})
	require.NoError(t, err)

	t.Run("both ends are offered while coins remain", func(t *testing.T) {
		state := rules.InitialState()

		require.Equal(t, []Move{TakeLeft, TakeRight}, rules.Moves(state, game.Max))
		over, _ := rules.IsTerminal(state)
		require.False(t, over)
	})

	t.Run("game ends when the row is empty", func(t *testing.T) {
		state := rules.Play(rules.InitialState(), TakeRight, game.Max)

		over, score := rules.IsTerminal(state)

		require.True(t, over)
		require.Equal(t, game.Score(5), score)
		require.Empty(t, rules.Moves(state, game.Min))
	})

	t.Run("evaluation is the score difference", func(t *testing.T) {
		require.Equal(t, game.Score(-3), rules.Evaluate(State{Coins: []int{1}, MaxScore: 4, MinScore: 7}))
	})
}
