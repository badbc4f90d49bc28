package notation

import "github.com/mjhoy/chess/pkg/board"

// Match returns the one move in `moves` that `d` describes. It returns false
// if zero or more than one move matches: the disambiguators exist precisely
// to break that tie, and a description that still matches more than one move
// is reported to the caller as ambiguous, identically to no match at all.
func Match(d MoveDescription, moves []board.Move) (board.Move, bool) {
	var match board.Move
	count := 0

	for _, m := range moves {
		if matches(d, m) {
			match = m
			count++
		}
	}

	if count != 1 {
		return board.Move{}, false
	}
	return match, true
}

func matches(d MoveDescription, m board.Move) bool {
	switch d.Kind {
	case CastleDescription:
		return m.Action.Kind == board.CastleAction && m.Action.Castleside == d.Castleside

	default:
		if m.Action.Kind != board.SimpleAction {
			return false
		}
		if m.Action.To != d.Dst {
			return false
		}
		if f, ok := d.SrcFile.V(); ok && m.Action.From.File() != f {
			return false
		}
		if r, ok := d.SrcRank.V(); ok && m.Action.From.Rank() != r {
			return false
		}
		// The destination's occupant in the resulting position disambiguates
		// what moved, not what was captured.
		return m.Next.Board.PieceAt(d.Dst).Piece == d.Piece
	}
}
