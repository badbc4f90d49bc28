package board

// CanMovePseudo reports whether `from` can move to `to` for the side to move,
// ignoring whether the resulting position leaves that side's own king in
// check.
func CanMovePseudo(state State, from, to Square) bool {
	src := state.Board.PieceAt(from)
	if src.Piece == NoPiece || src.Side != state.Turn {
		return false
	}

	dst := state.Board.PieceAt(to)
	if !dst.IsEmpty() && dst.Side == state.Turn {
		return false
	}

	return Reach(src.Piece, from, to, state)
}

// InCheck reports whether the side to move's king is attacked.
func InCheck(state State) bool {
	king := state.Board.KingSquare(state.Turn)

	// En passant can never be used to give check, so it is excluded from the
	// hypothetical position used to probe attacks.
	attacker := State{Board: state.Board, Turn: state.Turn.Opponent(), Castling: state.Castling}

	for _, from := range Coords() {
		if CanMovePseudo(attacker, from, king) {
			return true
		}
	}
	return false
}

// CanMove reports whether moving `from` to `to` is fully legal: pseudo-legal,
// and the resulting position does not leave the mover's own king in check.
func CanMove(state State, from, to Square) bool {
	if !CanMovePseudo(state, from, to) {
		return false
	}

	hypothetical := State{
		Board:    state.Board.MovePiece(from, to),
		Turn:     state.Turn,
		Castling: state.Castling,
	}
	return !InCheck(hypothetical)
}

// CanCastle reports whether the side to move may legally castle to `cs`:
// the right is held, the path is clear, and the king does not start, pass
// through, or end the move in check.
func CanCastle(state State, cs Castleside) bool {
	if !state.Castling.Able(state.Turn, cs) {
		return false
	}
	if !Free(state.Board, state.Turn, cs) {
		return false
	}
	if InCheck(state) {
		return false
	}

	king := state.Board.KingSquare(state.Turn)
	through, dest := KingTracks(state.Turn, cs)

	for _, sq := range []Square{through, dest} {
		hypothetical := State{
			Board:    state.Board.MovePiece(king, sq),
			Turn:     state.Turn,
			Castling: state.Castling,
		}
		if InCheck(hypothetical) {
			return false
		}
	}
	return true
}
