// Package chess implements a simplified chess: the game ends when a king is
// captured. There is no check detection, castling, en passant or promotion,
// so a move may leave the mover's own king capturable.
package chess

import "gametree/game"

const (
	// KingCaptured is the magnitude of a decisive result
	KingCaptured game.Score = 1000
)

// Material values per piece kind, White positive
var material = map[Piece]game.Score{
	WhitePawn:   1,
	WhiteKnight: 3,
	WhiteBishop: 3,
	WhiteRook:   5,
	WhiteQueen:  9,
	WhiteKing:   100,
}

var startingRows = [Size]string{
	"RNBQKBNR",
	"PPPPPPPP",
	"........",
	"........",
	"........",
	"........",
	"pppppppp",
	"rnbqkbnr",
}

type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

func (Rules) InitialState() Board {
	b, err := ParseBoard(startingRows)
	if err != nil {
		panic(err)
	}
	return b
}

func (r Rules) Moves(b Board, player game.Player) []Move {
	if over, _ := r.IsTerminal(b); over {
		return nil
	}
	return generateMoves(b, player)
}

// Play moves the piece, replacing whatever stood on the destination
func (Rules) Play(b Board, move Move, player game.Player) Board {
	b[move.To.Row][move.To.Col] = b[move.From.Row][move.From.Col]
	b[move.From.Row][move.From.Col] = Empty
	return b
}

// IsTerminal ends the game once either king is missing. White is checked
// first, so a board without both kings scores as a Black win.
func (Rules) IsTerminal(b Board) (bool, game.Score) {
	white, black := false, false
	for _, row := range b {
		for _, p := range row {
			switch p {
			case WhiteKing:
				white = true
			case BlackKing:
				black = true
			}
		}
	}
	switch {
	case !white:
		return true, -KingCaptured
	case !black:
		return true, KingCaptured
	}
	return false, 0
}

// Evaluate sums signed material over the board
func (Rules) Evaluate(b Board) game.Score {
	var score game.Score
	for _, row := range b {
		for _, p := range row {
			if p == Empty {
				continue
			}
			score += material[p.Kind()] * game.Score(p.Owner())
		}
	}
	return score
}
