package notation_test

import (
	"testing"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/mjhoy/chess/pkg/board/fen"
	"github.com/mjhoy/chess/pkg/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario F: an undisambiguated knight move that two knights can both make
// resolves to no match; a file-disambiguated version resolves uniquely.
func TestMatchNeedsDisambiguatingFile(t *testing.T) {
	state, err := fen.Decode("8/3k4/8/8/8/2N1N3/3K4/8 w - - 0 1")
	require.NoError(t, err)
	moves := board.GenerateMoves(state)

	d, err := notation.ParseMove("Nd5")
	require.NoError(t, err)
	_, ok := notation.Match(d, moves)
	assert.False(t, ok)

	d, err = notation.ParseMove("Ncd5")
	require.NoError(t, err)
	_, ok = notation.Match(d, moves)
	assert.True(t, ok)
}

func TestMatchNeedsDisambiguatingRank(t *testing.T) {
	state, err := fen.Decode("8/3k4/8/1N6/8/1N6/3K4/8 w - - 0 1")
	require.NoError(t, err)
	moves := board.GenerateMoves(state)

	d, err := notation.ParseMove("Nd4")
	require.NoError(t, err)
	_, ok := notation.Match(d, moves)
	assert.False(t, ok)

	d, err = notation.ParseMove("N3d4")
	require.NoError(t, err)
	_, ok = notation.Match(d, moves)
	assert.True(t, ok)
}

func TestMatchSimpleSequence(t *testing.T) {
	state := board.InitialState()
	for _, san := range []string{"e3", "e6", "Ke2", "e5", "Kd3", "e4"} {
		d, err := notation.ParseMove(san)
		require.NoError(t, err)

		m, ok := notation.Match(d, board.GenerateMoves(state))
		require.True(t, ok, san)
		state = m.Next
	}

	assert.Equal(t, board.Content{Side: board.White, Piece: board.King}, state.Board.PieceAt(board.D3))
	assert.Equal(t, board.Content{Side: board.Black, Piece: board.Pawn}, state.Board.PieceAt(board.E4))
}

func TestMatchCastlesSequence(t *testing.T) {
	state := board.InitialState()
	for _, san := range []string{
		"e4", "e6", "Bc4", "Nc6", "Nf3", "d6", "O-O", "Bd7", "d3", "Qf6", "Nc3", "O-O-O",
	} {
		d, err := notation.ParseMove(san)
		require.NoError(t, err)

		m, ok := notation.Match(d, board.GenerateMoves(state))
		require.True(t, ok, san)
		state = m.Next
	}

	assert.Equal(t, board.Content{Side: board.White, Piece: board.King}, state.Board.PieceAt(board.G1))
	assert.Equal(t, board.Content{Side: board.White, Piece: board.Rook}, state.Board.PieceAt(board.F1))
	assert.Equal(t, board.Content{Side: board.Black, Piece: board.King}, state.Board.PieceAt(board.C8))
	assert.Equal(t, board.Content{Side: board.Black, Piece: board.Rook}, state.Board.PieceAt(board.D8))
}
