// Package board contains the chess board representation, the position model
// built on top of it, and the move generator.
package board

import (
	"fmt"
	"strings"
)

// Content is the occupant of a single square: either empty (Piece == NoPiece)
// or a (Side, Piece) pair.
type Content struct {
	Side  Side
	Piece Piece
}

// IsEmpty returns true iff the content represents an empty square.
func (c Content) IsEmpty() bool {
	return c.Piece == NoPiece
}

func (c Content) String() string {
	if c.IsEmpty() {
		return "."
	}
	if c.Side == White {
		return strings.ToUpper(c.Piece.String())
	}
	return c.Piece.String()
}

// Placement pins a piece to a square, used to build a Board from a sparse list.
type Placement struct {
	Square Square
	Side   Side
	Piece  Piece
}

// Board is an immutable 64-square mailbox. The only way to derive a new Board
// from an existing one is MovePiece: there is no operation that writes to an
// arbitrary square.
type Board struct {
	squares [NumSquares]Content
}

// Initial returns the standard chess starting position.
func Initial() Board {
	var b Board
	back := [8]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	for f := ZeroFile; f < NumFiles; f++ {
		b.squares[NewSquare(f, Rank1)] = Content{White, back[f]}
		b.squares[NewSquare(f, Rank2)] = Content{White, Pawn}
		b.squares[NewSquare(f, Rank7)] = Content{Black, Pawn}
		b.squares[NewSquare(f, Rank8)] = Content{Black, back[f]}
	}
	return b
}

// FromPlacements builds a Board from a sparse list of occupied squares; every
// square not named is empty. Duplicate placements on the same square overwrite
// in list order.
func FromPlacements(placements []Placement) Board {
	var b Board
	for _, p := range placements {
		b.squares[p.Square] = Content{p.Side, p.Piece}
	}
	return b
}

// PieceAt returns the content of the given square.
func (b Board) PieceAt(sq Square) Content {
	return b.squares[sq]
}

// IsEmpty returns true iff the square holds no piece.
func (b Board) IsEmpty(sq Square) bool {
	return b.squares[sq].IsEmpty()
}

// AllEmpty returns true iff every given square is empty.
func (b Board) AllEmpty(squares ...Square) bool {
	for _, sq := range squares {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// MovePiece clears `from` and writes whatever was there to `to`, overwriting
// `to` (used for captures). It performs no legality checks and carries no
// history: it is the sole mutator, and it is pure.
func (b Board) MovePiece(from, to Square) Board {
	next := b
	next.squares[to] = next.squares[from]
	next.squares[from] = Content{}
	return next
}

// KingSquare returns the one square occupied by the side's king. It panics if
// none is found: a missing king is an invariant violation, not a recoverable
// error.
func (b Board) KingSquare(side Side) Square {
	for _, sq := range Coords() {
		c := b.squares[sq]
		if c.Piece == King && c.Side == side {
			return sq
		}
	}
	panic(fmt.Sprintf("no %v king on board", side))
}

// Coords returns the 64 squares in row-major, rank-ascending order: a1, b1,
// .., h1, a2, .., h8.
func Coords() []Square {
	coords := make([]Square, NumSquares)
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		coords[sq] = sq
	}
	return coords
}

func (b Board) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		for f := ZeroFile; f < NumFiles; f++ {
			sb.WriteByte(' ')
			sb.WriteString(b.PieceAt(NewSquare(f, r)).String())
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(" ")
	for f := ZeroFile; f < NumFiles; f++ {
		sb.WriteString(" ")
		sb.WriteString(f.String())
	}
	return sb.String()
}
