package board

import "strings"

// Castling represents the set of castling rights still held by either side.
// 4 bits, one per (side, castleside) combination.
type Castling uint8

const (
	WhiteKingsideCastle Castling = 1 << iota
	WhiteQueensideCastle
	BlackKingsideCastle
	BlackQueensideCastle
)

// InitialCastling is the full set of rights, as held before any king or rook
// has moved.
const InitialCastling = WhiteKingsideCastle | WhiteQueensideCastle | BlackKingsideCastle | BlackQueensideCastle

// Castleside distinguishes the two sides a king may castle toward.
type Castleside uint8

const (
	Kingside Castleside = iota
	Queenside
)

func (cs Castleside) String() string {
	if cs == Queenside {
		return "queenside"
	}
	return "kingside"
}

func right(side Side, cs Castleside) Castling {
	switch {
	case side == White && cs == Kingside:
		return WhiteKingsideCastle
	case side == White && cs == Queenside:
		return WhiteQueensideCastle
	case side == Black && cs == Kingside:
		return BlackKingsideCastle
	default:
		return BlackQueensideCastle
	}
}

// IsAllowed returns true iff any of the given rights is held.
func (c Castling) IsAllowed(right Castling) bool {
	return c&right != 0
}

// Able returns whether `side` still holds the right to castle `cs`.
func (c Castling) Able(side Side, cs Castleside) bool {
	return c.IsAllowed(right(side, cs))
}

// AfterMove erodes castling rights given that `side` has just moved a piece
// away from `from`. Erosion is indexed by the departure square, not by piece
// identity: capturing an opposing rook on its home square does not clear the
// defender's right, since only the mover's `from` square drives erosion.
// Any square other than a king or rook home square leaves rights unchanged.
func (c Castling) AfterMove(side Side, from Square) Castling {
	switch {
	case side == White && from == E1:
		return c &^ (WhiteKingsideCastle | WhiteQueensideCastle)
	case side == White && from == H1:
		return c &^ WhiteKingsideCastle
	case side == White && from == A1:
		return c &^ WhiteQueensideCastle
	case side == Black && from == E8:
		return c &^ (BlackKingsideCastle | BlackQueensideCastle)
	case side == Black && from == H8:
		return c &^ BlackKingsideCastle
	case side == Black && from == A8:
		return c &^ BlackQueensideCastle
	default:
		return c
	}
}

// Castle returns the board and rights that result from `side` castling `cs`.
// Both of that side's rights are cleared.
func (c Castling) Castle(b Board, side Side, cs Castleside) (Board, Castling) {
	var next Board
	switch {
	case side == White && cs == Kingside:
		next = b.MovePiece(E1, G1).MovePiece(H1, F1)
	case side == White && cs == Queenside:
		next = b.MovePiece(E1, C1).MovePiece(A1, D1)
	case side == Black && cs == Kingside:
		next = b.MovePiece(E8, G8).MovePiece(H8, F8)
	default:
		next = b.MovePiece(E8, C8).MovePiece(A8, D8)
	}

	var cleared Castling
	if side == White {
		cleared = WhiteKingsideCastle | WhiteQueensideCastle
	} else {
		cleared = BlackKingsideCastle | BlackQueensideCastle
	}
	return next, c &^ cleared
}

// Free returns true iff the squares between king and rook are empty for the
// given (side, castleside).
func Free(b Board, side Side, cs Castleside) bool {
	switch {
	case side == White && cs == Kingside:
		return b.AllEmpty(F1, G1)
	case side == White && cs == Queenside:
		return b.AllEmpty(B1, C1, D1)
	case side == Black && cs == Kingside:
		return b.AllEmpty(F8, G8)
	default:
		return b.AllEmpty(B8, C8, D8)
	}
}

// KingTracks returns the two squares the king passes over while castling
// (including its destination), used to check path safety.
func KingTracks(side Side, cs Castleside) (Square, Square) {
	switch {
	case side == White && cs == Kingside:
		return F1, G1
	case side == White && cs == Queenside:
		return D1, C1
	case side == Black && cs == Kingside:
		return F8, G8
	default:
		return D8, C8
	}
}

func (c Castling) String() string {
	if c == 0 {
		return "-"
	}

	var sb strings.Builder
	if c.IsAllowed(WhiteKingsideCastle) {
		sb.WriteString("K")
	}
	if c.IsAllowed(WhiteQueensideCastle) {
		sb.WriteString("Q")
	}
	if c.IsAllowed(BlackKingsideCastle) {
		sb.WriteString("k")
	}
	if c.IsAllowed(BlackQueensideCastle) {
		sb.WriteString("q")
	}
	return sb.String()
}
