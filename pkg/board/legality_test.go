package board_test

import (
	"testing"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/mjhoy/chess/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanMovePseudoOwnPieceBlocksOwnDestination(t *testing.T) {
	state := board.State{Board: board.Initial(), Turn: board.White}
	assert.False(t, board.CanMovePseudo(state, board.A1, board.A2))
	assert.True(t, board.CanMovePseudo(state, board.B1, board.A3))
}

func TestInCheck(t *testing.T) {
	b := board.FromPlacements([]board.Placement{
		{Square: board.E1, Side: board.White, Piece: board.King},
		{Square: board.E8, Side: board.Black, Piece: board.Rook},
		{Square: board.A1, Side: board.Black, Piece: board.King},
	})
	state := board.State{Board: b, Turn: board.White}
	assert.True(t, board.InCheck(state))
}

func TestCanMoveRejectsSelfCheck(t *testing.T) {
	// White king on e1, white rook pinned on e2 by a black rook on e8.
	b := board.FromPlacements([]board.Placement{
		{Square: board.E1, Side: board.White, Piece: board.King},
		{Square: board.E2, Side: board.White, Piece: board.Rook},
		{Square: board.E8, Side: board.Black, Piece: board.Rook},
		{Square: board.A8, Side: board.Black, Piece: board.King},
	})
	state := board.State{Board: b, Turn: board.White}

	assert.False(t, board.CanMove(state, board.E2, board.D2))
	assert.True(t, board.CanMove(state, board.E2, board.E4))
}

// Scenario D: castling kingside.
func TestCanCastleKingside(t *testing.T) {
	state, err := fen.Decode("rnbqkb1r/pp2pppp/3p1n2/2p5/2B5/4PN2/PPPP1PPP/RNBQK2R w KQkq -")
	require.NoError(t, err)

	assert.True(t, board.CanCastle(state, board.Kingside))
}

// Scenario E: castling blocked because the king would pass through an
// attacked square, even though the path itself is empty.
func TestCanCastleBlockedByAttackOnPath(t *testing.T) {
	state, err := fen.Decode("rn1qkbnr/ppp1pppp/B2p4/8/2b5/4PN2/PPPP1PPP/RNBQK2R w KQkq -")
	require.NoError(t, err)

	assert.True(t, board.Free(state.Board, board.White, board.Kingside))
	assert.False(t, board.CanCastle(state, board.Kingside))
}
