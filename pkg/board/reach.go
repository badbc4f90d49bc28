package board

// Reach reports whether a `piece` sitting at `from` could move to `to`,
// given board occupancy in `state`. It is purely geometric: it does not
// consult ownership of `from`/`to`, nor whether the move would leave the
// mover in check. Those concerns belong to the legality filter in
// legality.go.
func Reach(piece Piece, from, to Square, state State) bool {
	switch piece {
	case King:
		return from.AbsRankDiff(to) <= 1 && from.AbsFileDiff(to) <= 1
	case Knight:
		dr, df := from.AbsRankDiff(to), from.AbsFileDiff(to)
		return dr >= 1 && df >= 1 && dr+df == 3
	case Rook:
		return lateralReach(state.Board, from, to)
	case Bishop:
		return diagonalReach(state.Board, from, to)
	case Queen:
		return lateralReach(state.Board, from, to) || diagonalReach(state.Board, from, to)
	case Pawn:
		return pawnReach(from, to, state)
	default:
		return false
	}
}

// lateralReach is the rook's reach: `from` and `to` share a file or a rank
// (not both, since that means from == to), and every intermediate square on
// that segment is empty.
func lateralReach(b Board, from, to Square) bool {
	if from == to {
		return false
	}

	if from.File() == to.File() {
		for _, r := range stepRange(from.Rank().V(), to.Rank().V()) {
			if !b.IsEmpty(NewSquare(from.File(), Rank(r))) {
				return false
			}
		}
		return true
	}
	if from.Rank() == to.Rank() {
		for _, f := range stepRange(from.File().V(), to.File().V()) {
			if !b.IsEmpty(NewSquare(File(f), from.Rank())) {
				return false
			}
		}
		return true
	}
	return false
}

// diagonalReach is the bishop's reach: `from` and `to` lie on a common
// diagonal, and every intermediate diagonal square is empty. The rank-step
// and file-step iterate in lockstep so the segment is traced correctly
// regardless of the diagonal's direction.
func diagonalReach(b Board, from, to Square) bool {
	dr, df := from.AbsRankDiff(to), from.AbsFileDiff(to)
	if dr != df || dr == 0 {
		return false
	}

	ranks := stepRange(from.Rank().V(), to.Rank().V())
	files := stepRange(from.File().V(), to.File().V())
	for i := range ranks {
		if !b.IsEmpty(NewSquare(File(files[i]), Rank(ranks[i]))) {
			return false
		}
	}
	return true
}

// pawnReach implements the pawn's asymmetric, direction-dependent reach:
// one- and two-square advances (non-capturing), diagonal captures, and the
// en passant exception where the destination square is empty but the move
// is still a capture of the square beside `from`.
func pawnReach(from, to Square, state State) bool {
	capture := !state.Board.IsEmpty(to)
	dir := 1
	startRank, jumpRank, midRank := Rank2, Rank4, Rank3 // White defaults
	if state.Turn == Black {
		dir = -1
		startRank, jumpRank, midRank = Rank7, Rank5, Rank6
	}

	if !capture && from.File() == to.File() && from.Rank() == startRank && to.Rank() == jumpRank {
		return state.Board.IsEmpty(NewSquare(from.File(), midRank))
	}

	nextRank := int(from.Rank()) + dir
	if nextRank < 0 || nextRank > int(Rank8) || to.Rank() != Rank(nextRank) {
		return false
	}

	if capture {
		return from.AbsFileDiff(to) == 1
	}

	ep, isEP := state.EnPassant.V()
	return (isEP && to == ep && from.AbsFileDiff(to) == 1) || from.File() == to.File()
}
