package chess

import "gametree/game"

type offset struct {
	dr int8
	dc int8
}

var (
	rookRays   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopRays = []offset{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
	queenRays  = append(append([]offset{}, rookRays...), bishopRays...)

	knightJumps = []offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingSteps   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
)

// pawnDirection is the row step of a player's pawns
func pawnDirection(player game.Player) int8 {
	if player == game.Max {
		return 1
	}
	return -1
}

// pawnStartRow is the row a player's pawns may double step from
func pawnStartRow(player game.Player) int8 {
	if player == game.Max {
		return 1
	}
	return Size - 2
}

// generateMoves scans the board row by row and collects the moves of every
// piece owned by player. Moves leaving the own king capturable are kept.
func generateMoves(b Board, player game.Player) []Move {
	moves := make([]Move, 0, 48)
	for row := int8(0); row < Size; row++ {
		for col := int8(0); col < Size; col++ {
			from := Square{Row: row, Col: col}
			p := b.at(from)
			if p.Owner() != player {
				continue
			}
			switch p.Kind() {
			case WhitePawn:
				moves = pawnMoves(moves, b, from, player)
			case WhiteRook:
				moves = slide(moves, b, from, player, rookRays)
			case WhiteBishop:
				moves = slide(moves, b, from, player, bishopRays)
			case WhiteQueen:
				moves = slide(moves, b, from, player, queenRays)
			case WhiteKnight:
				moves = leap(moves, b, from, player, knightJumps)
			case WhiteKing:
				moves = leap(moves, b, from, player, kingSteps)
			}
		}
	}
	return moves
}

func pawnMoves(moves []Move, b Board, from Square, player game.Player) []Move {
	dir := pawnDirection(player)
	one := Square{Row: from.Row + dir, Col: from.Col}
	if !one.onBoard() {
		return moves
	}

	if b.at(one) == Empty {
		moves = append(moves, Move{From: from, To: one})
		two := Square{Row: from.Row + 2*dir, Col: from.Col}
		if from.Row == pawnStartRow(player) && two.onBoard() && b.at(two) == Empty {
			moves = append(moves, Move{From: from, To: two})
		}
	}

	for _, dc := range [2]int8{-1, 1} {
		to := Square{Row: one.Row, Col: from.Col + dc}
		if to.onBoard() && b.at(to).Owner() == player.Opponent() {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// slide walks each ray until the board edge or the first occupied square.
// An opponent piece on that square is capturable, an own piece is not.
func slide(moves []Move, b Board, from Square, player game.Player, rays []offset) []Move {
	for _, ray := range rays {
		to := from
		for {
			to = Square{Row: to.Row + ray.dr, Col: to.Col + ray.dc}
			if !to.onBoard() {
				break
			}
			owner := b.at(to).Owner()
			if owner == player {
				break
			}
			moves = append(moves, Move{From: from, To: to})
			if owner != 0 {
				break
			}
		}
	}
	return moves
}

func leap(moves []Move, b Board, from Square, player game.Player, jumps []offset) []Move {
	for _, j := range jumps {
		to := Square{Row: from.Row + j.dr, Col: from.Col + j.dc}
		if to.onBoard() && b.at(to).Owner() != player {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
