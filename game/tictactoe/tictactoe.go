// Package tictactoe implements the 3x3 grid game. X is Max and moves first.
package tictactoe

import (
	"strings"

	"gametree/game"
)

const Size = 3

type Mark byte

const (
	Empty Mark = ' '
	X     Mark = 'X'
	O     Mark = 'O'
)

// Board is a value type, copying it copies the whole grid.
type Board [Size][Size]Mark

// Move places the mover's mark into an empty cell
type Move struct {
	Row int
	Col int
}

const (
	WinScore  game.Score = 1
	DrawScore game.Score = 0
)

// The 8 winning lines: rows, columns and both diagonals
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

// MarkOf returns the mark a player places
func MarkOf(player game.Player) Mark {
	if player == game.Max {
		return X
	}
	return O
}

func (Rules) InitialState() Board {
	var b Board
	for i := range b {
		for j := range b[i] {
			b[i][j] = Empty
		}
	}
	return b
}

func (r Rules) Moves(b Board, player game.Player) []Move {
	if over, _ := r.IsTerminal(b); over {
		return nil
	}
	moves := make([]Move, 0, Size*Size)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if b[i][j] == Empty {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}
	return moves
}

func (Rules) Play(b Board, move Move, player game.Player) Board {
	b[move.Row][move.Col] = MarkOf(player)
	return b
}

// Winner returns the mark completing a line, or Empty
func (b Board) Winner() Mark {
	for _, line := range lines {
		m := b[line[0].Row][line[0].Col]
		if m == Empty {
			continue
		}
		if b[line[1].Row][line[1].Col] == m && b[line[2].Row][line[2].Col] == m {
			return m
		}
	}
	return Empty
}

// Full reports whether no empty cell is left
func (b Board) Full() bool {
	for i := range b {
		for j := range b[i] {
			if b[i][j] == Empty {
				return false
			}
		}
	}
	return true
}

func (Rules) IsTerminal(b Board) (bool, game.Score) {
	switch b.Winner() {
	case X:
		return true, WinScore
	case O:
		return true, -WinScore
	}
	if b.Full() {
		return true, DrawScore
	}
	return false, DrawScore
}

// Evaluate has no heuristic to offer: an unfinished game is worth a draw.
func (Rules) Evaluate(Board) game.Score {
	return DrawScore
}

func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, m := range row {
			if j > 0 {
				sb.WriteByte('|')
			}
			sb.WriteByte(byte(m))
		}
	}
	return sb.String()
}
