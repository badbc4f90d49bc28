package board

import "github.com/seekerror/stdlib/pkg/lang"

// applySimple builds the State reached by a simple from->to relocation. The
// caller (the generator) has already established that the move is legal.
func applySimple(state State, from, to Square) State {
	mover := state.Board.PieceAt(from)
	next := state.Board.MovePiece(from, to)

	if mover.Piece == Pawn {
		if ep, ok := state.EnPassant.V(); ok && to == ep {
			captured := NewSquare(to.File(), from.Rank())
			next = next.MovePiece(captured, captured) // clears the passed pawn
		}
	}

	var enPassant lang.Optional[Square]
	if mover.Piece == Pawn && from.AbsRankDiff(to) == 2 {
		midRank := Rank((int(from.Rank()) + int(to.Rank())) / 2)
		enPassant = lang.Some(NewSquare(from.File(), midRank))
	}

	return State{
		Board:     next,
		Turn:      state.Turn.Opponent(),
		EnPassant: enPassant,
		Castling:  state.Castling.AfterMove(state.Turn, from),
	}
}

// applyCastle builds the State reached by castling `cs` for the side to
// move. The en passant target carries over unchanged, per the source: it is
// already stale by the time a castle could be played in reply.
func applyCastle(state State, cs Castleside) State {
	next, rights := state.Castling.Castle(state.Board, state.Turn, cs)
	return State{
		Board:     next,
		Turn:      state.Turn.Opponent(),
		EnPassant: state.EnPassant,
		Castling:  rights,
	}
}
