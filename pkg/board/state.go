package board

import "github.com/seekerror/stdlib/pkg/lang"

// State is the full position: the board, the side to move, the en passant
// target square (if any), and remaining castling rights. It is an immutable
// value type, just as Board is; moves produce new States rather than
// mutating an existing one.
type State struct {
	Board     Board
	Turn      Side
	EnPassant lang.Optional[Square]
	Castling  Castling
}

// InitialState is the standard starting position: White to move, both sides
// holding full castling rights, and no en passant target.
func InitialState() State {
	return State{
		Board:    Initial(),
		Turn:     White,
		Castling: InitialCastling,
	}
}
