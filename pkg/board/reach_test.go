package board_test

import (
	"testing"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestReachKnight(t *testing.T) {
	state := board.State{Board: board.FromPlacements(nil), Turn: board.White}
	assert.True(t, board.Reach(board.Knight, board.B1, board.A3, state))
	assert.True(t, board.Reach(board.Knight, board.B1, board.C3, state))
	assert.False(t, board.Reach(board.Knight, board.B1, board.B3, state))
}

func TestReachKing(t *testing.T) {
	state := board.State{Board: board.FromPlacements(nil), Turn: board.White}
	assert.True(t, board.Reach(board.King, board.E1, board.E2, state))
	assert.True(t, board.Reach(board.King, board.E1, board.D2, state))
	assert.False(t, board.Reach(board.King, board.E1, board.E3, state))
}

func TestReachRookBlockedAndClear(t *testing.T) {
	b := board.FromPlacements([]board.Placement{
		{Square: board.A1, Side: board.White, Piece: board.Rook},
		{Square: board.A4, Side: board.Black, Piece: board.Pawn},
	})
	state := board.State{Board: b, Turn: board.White}

	assert.True(t, board.Reach(board.Rook, board.A1, board.A3, state))
	assert.True(t, board.Reach(board.Rook, board.A1, board.A4, state))
	assert.False(t, board.Reach(board.Rook, board.A1, board.A5, state))
	assert.False(t, board.Reach(board.Rook, board.A1, board.B2, state))
}

func TestReachBishopDiagonal(t *testing.T) {
	b := board.FromPlacements([]board.Placement{
		{Square: board.C1, Side: board.White, Piece: board.Bishop},
		{Square: board.F4, Side: board.Black, Piece: board.Pawn},
	})
	state := board.State{Board: b, Turn: board.White}

	assert.True(t, board.Reach(board.Bishop, board.C1, board.E3, state))
	assert.True(t, board.Reach(board.Bishop, board.C1, board.F4, state))
	assert.False(t, board.Reach(board.Bishop, board.C1, board.G5, state))
}

func TestReachQueenCombinesRookAndBishop(t *testing.T) {
	state := board.State{Board: board.FromPlacements(nil), Turn: board.White}
	assert.True(t, board.Reach(board.Queen, board.D1, board.D8, state))
	assert.True(t, board.Reach(board.Queen, board.D1, board.A4, state))
	assert.False(t, board.Reach(board.Queen, board.D1, board.E3, state))
}

func TestReachPawnAdvances(t *testing.T) {
	state := board.State{Board: board.Initial(), Turn: board.White}
	assert.True(t, board.Reach(board.Pawn, board.E2, board.E3, state))
	assert.True(t, board.Reach(board.Pawn, board.E2, board.E4, state))
	assert.False(t, board.Reach(board.Pawn, board.E2, board.E5, state))
}

func TestReachPawnAdvanceBlocked(t *testing.T) {
	b := board.Initial().MovePiece(board.D7, board.E3)
	state := board.State{Board: b, Turn: board.White}
	assert.False(t, board.Reach(board.Pawn, board.E2, board.E4, state))
}

func TestReachPawnCapture(t *testing.T) {
	b := board.FromPlacements([]board.Placement{
		{Square: board.E4, Side: board.White, Piece: board.Pawn},
		{Square: board.D5, Side: board.Black, Piece: board.Pawn},
	})
	state := board.State{Board: b, Turn: board.White}
	assert.True(t, board.Reach(board.Pawn, board.E4, board.D5, state))
	assert.False(t, board.Reach(board.Pawn, board.E4, board.D5, board.State{Board: board.FromPlacements(nil), Turn: board.White}))
}

func TestReachPawnEnPassant(t *testing.T) {
	b := board.FromPlacements([]board.Placement{
		{Square: board.E5, Side: board.White, Piece: board.Pawn},
		{Square: board.F5, Side: board.Black, Piece: board.Pawn},
	})
	state := board.State{Board: b, Turn: board.White, EnPassant: lang.Some(board.F6)}
	assert.True(t, board.Reach(board.Pawn, board.E5, board.F6, state))
}

func TestReachPawnBlack(t *testing.T) {
	state := board.State{Board: board.Initial(), Turn: board.Black}
	assert.True(t, board.Reach(board.Pawn, board.E7, board.E6, state))
	assert.True(t, board.Reach(board.Pawn, board.E7, board.E5, state))
}
