// Package notation parses algebraic move descriptions and resolves them
// against a position's legal moves.
package notation

import (
	"fmt"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Kind distinguishes the two shapes a MoveDescription can take.
type Kind uint8

const (
	SimpleDescription Kind = iota
	CastleDescription
)

// MoveDescription is a parsed algebraic move, not yet matched against any
// particular position's legal moves. For a simple description, either,
// neither, or both of SrcFile and SrcRank may be present, depending on how
// much disambiguation the input carried.
type MoveDescription struct {
	Kind Kind

	Piece   board.Piece // valid iff Kind == SimpleDescription
	SrcFile lang.Optional[board.File]
	SrcRank lang.Optional[board.Rank]
	Dst     board.Square

	Castleside board.Castleside // valid iff Kind == CastleDescription
}

func SimpleDescriptionOf(piece board.Piece, srcFile lang.Optional[board.File], srcRank lang.Optional[board.Rank], dst board.Square) MoveDescription {
	return MoveDescription{Kind: SimpleDescription, Piece: piece, SrcFile: srcFile, SrcRank: srcRank, Dst: dst}
}

func CastleDescriptionOf(cs board.Castleside) MoveDescription {
	return MoveDescription{Kind: CastleDescription, Castleside: cs}
}

func (d MoveDescription) String() string {
	if d.Kind == CastleDescription {
		if d.Castleside == board.Queenside {
			return "O-O-O"
		}
		return "O-O"
	}

	var piece string
	if d.Piece != board.Pawn {
		piece = pieceLetter(d.Piece)
	}
	var srcFile, srcRank string
	if f, ok := d.SrcFile.V(); ok {
		srcFile = f.String()
	}
	if r, ok := d.SrcRank.V(); ok {
		srcRank = r.String()
	}
	return fmt.Sprintf("%v%v%v%v", piece, srcFile, srcRank, d.Dst)
}

func pieceLetter(p board.Piece) string {
	switch p {
	case board.King:
		return "K"
	case board.Queen:
		return "Q"
	case board.Rook:
		return "R"
	case board.Bishop:
		return "B"
	case board.Knight:
		return "N"
	default:
		return ""
	}
}
