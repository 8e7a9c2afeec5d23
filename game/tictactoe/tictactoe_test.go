package tictactoe

import (
	"testing"

	"gametree/game"

	"github.com/stretchr/testify/require"
)

func board(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Size)
	var b Board
	for i, row := range rows {
		require.Len(t, row, Size)
		for j := 0; j < Size; j++ {
			b[i][j] = Mark(row[j])
		}
	}
	return b
}

func TestMoves(t *testing.T) {
	rules := NewRules()

	t.Run("empty board offers every cell in row order", func(t *testing.T) {
		moves := rules.Moves(rules.InitialState(), game.Max)

		require.Len(t, moves, 9)
		require.Equal(t, Move{0, 0}, moves[0])
		require.Equal(t, Move{0, 1}, moves[1])
		require.Equal(t, Move{2, 2}, moves[8])
	})

	t.Run("occupied cells are skipped", func(t *testing.T) {
		b := board(t, "X O", " X ", "O  ")

		moves := rules.Moves(b, game.Min)

		require.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, moves)
	})

	t.Run("won board offers no moves", func(t *testing.T) {
		b := board(t, "XXX", "OO ", "   ")

		require.Empty(t, rules.Moves(b, game.Min))
	})
}

func TestPlay(t *testing.T) {
	rules := NewRules()

	t.Run("places the mover's mark", func(t *testing.T) {
		b := rules.Play(rules.InitialState(), Move{1, 2}, game.Max)
		b = rules.Play(b, Move{0, 0}, game.Min)

		require.Equal(t, X, b[1][2])
		require.Equal(t, O, b[0][0])
	})

	t.Run("leaves the input board unchanged", func(t *testing.T) {
		b := board(t, "X  ", " O ", "   ")
		before := b

		next := rules.Play(b, Move{2, 2}, game.Max)

		require.Equal(t, before, b)
		require.NotEqual(t, b, next)
	})
}

func TestIsTerminal(t *testing.T) {
	rules := NewRules()

	tests := []struct {
		name  string
		board Board
		over  bool
		score game.Score
	}{
		{"empty board", rules.InitialState(), false, 0},
		{"row of X", board(t, "   ", "XXX", "OO "), true, 1},
		{"column of O", board(t, "XO ", "XO ", " OX"), true, -1},
		{"main diagonal", board(t, "XO ", "OX ", "  X"), true, 1},
		{"anti diagonal", board(t, "XXO", "XO ", "O  "), true, -1},
		{"full board without a line", board(t, "XOX", "XOO", "OXX"), true, 0},
		{"unfinished game", board(t, "XO ", "   ", "   "), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			over, score := rules.IsTerminal(tt.board)

			require.Equal(t, tt.over, over)
			if over {
				require.Equal(t, tt.score, score)
			}
		})
	}
}

func TestString(t *testing.T) {
	b := board(t, "X  ", " O ", "   ")

	require.Equal(t, "X| | \n |O| \n | | ", b.String())
}
