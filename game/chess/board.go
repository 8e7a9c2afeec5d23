package chess

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gametree/game"
)

const Size = 8

var ErrInvalidBoard = errors.New("invalid board")

// Piece is a one letter code: upper case is White (Max), lower case is Black (Min).
type Piece byte

const (
	Empty Piece = ' '

	WhitePawn   Piece = 'P'
	WhiteKnight Piece = 'N'
	WhiteBishop Piece = 'B'
	WhiteRook   Piece = 'R'
	WhiteQueen  Piece = 'Q'
	WhiteKing   Piece = 'K'

	BlackPawn   Piece = 'p'
	BlackKnight Piece = 'n'
	BlackBishop Piece = 'b'
	BlackRook   Piece = 'r'
	BlackQueen  Piece = 'q'
	BlackKing   Piece = 'k'
)

// Kind returns the piece letter regardless of color
func (p Piece) Kind() Piece {
	return Piece(unicode.ToUpper(rune(p)))
}

// Owner returns the player the piece belongs to, or 0 for an empty square
func (p Piece) Owner() game.Player {
	switch {
	case p == Empty:
		return 0
	case unicode.IsUpper(rune(p)):
		return game.Max
	default:
		return game.Min
	}
}

func (p Piece) valid() bool {
	switch p.Kind() {
	case WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing:
		return true
	}
	return p == Empty
}

// Board is indexed [row][col]. Row 0 holds White's back rank.
// It is a value type, so assigning or passing it copies every square.
type Board [Size][Size]Piece

// Square is a board coordinate
type Square struct {
	Row int8
	Col int8
}

func (s Square) onBoard() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// String renders the square as file letter and rank, row 0 being rank 1
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
}

// Move carries a piece from one square to another
type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

func (b Board) at(s Square) Piece {
	return b[s.Row][s.Col]
}

// ParseBoard builds a board from 8 rows of 8 characters, row 0 first.
// Empty squares may be written as ' ' or '.'.
func ParseBoard(rows [Size]string) (Board, error) {
	var b Board
	for i, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("row %d has %d squares: %w", i, len(row), ErrInvalidBoard)
		}
		for j := 0; j < Size; j++ {
			p := Piece(row[j])
			if p == '.' {
				p = Empty
			}
			if !p.valid() {
				return Board{}, fmt.Errorf("unknown piece %q at row %d col %d: %w", row[j], i, j, ErrInvalidBoard)
			}
			b[i][j] = p
		}
	}
	return b, nil
}

// String draws the board with rank 8 on top
func (b Board) String() string {
	var sb strings.Builder
	for i := Size - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%d ", i+1)
		for j := 0; j < Size; j++ {
			if b[i][j] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte(b[i][j]))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh")
	return sb.String()
}
