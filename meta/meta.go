// meta/meta.go
package meta

// TICTACTOE_DEPTH searches tic-tac-toe to the end of the game.
const TICTACTOE_DEPTH = 9

// CHESS_DEPTH defines the fixed cutoff depth for chess.
const CHESS_DEPTH = 3

// MAX_TURNS caps the moves of a single game.
const MAX_TURNS = 300

// COINS defines the default coin row.
var COINS = []int{3, 9, 1, 2, 7, 5, 4, 8}
