package notation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// ParseMove parses a single algebraic move description: `O-O`/`O-O-O`, or
// `<piece?><srcFile?><srcRank?><dstFile><dstRank>`. Check/mate marks,
// captures ("x") and promotion suffixes are rejected, since the engine never
// models promotion.
//
// Disambiguated forms are distinguished in the order all, rank-only,
// file-only, none, so that an input like "Qh4e1" resolves as the
// all-disambiguated form (srcFile=h, srcRank=4, dst=e1) rather than being
// read greedily as a shorter, wrong alternative.
func ParseMove(input string) (MoveDescription, error) {
	if input == "O-O-O" {
		return CastleDescriptionOf(board.Queenside), nil
	}
	if input == "O-O" {
		return CastleDescriptionOf(board.Kingside), nil
	}

	runes := []rune(input)
	if len(runes) == 0 {
		return MoveDescription{}, fmt.Errorf("empty move description")
	}

	piece, rest := board.Pawn, runes
	if p, ok := parsePieceLetter(runes[0]); ok {
		piece, rest = p, runes[1:]
	}

	switch len(rest) {
	case 4: // all: srcFile + srcRank + dst
		f, ok := board.ParseFile(rest[0])
		if !ok {
			return MoveDescription{}, fmt.Errorf("invalid move description: %q", input)
		}
		r, ok := board.ParseRank(rest[1])
		if !ok {
			return MoveDescription{}, fmt.Errorf("invalid move description: %q", input)
		}
		dst, err := board.ParseSquare(rest[2], rest[3])
		if err != nil {
			return MoveDescription{}, fmt.Errorf("invalid move description: %q: %w", input, err)
		}
		return SimpleDescriptionOf(piece, lang.Some(f), lang.Some(r), dst), nil

	case 3:
		if unicode.IsDigit(rest[0]) { // rank-only: srcRank + dst
			r, ok := board.ParseRank(rest[0])
			if !ok {
				return MoveDescription{}, fmt.Errorf("invalid move description: %q", input)
			}
			dst, err := board.ParseSquare(rest[1], rest[2])
			if err != nil {
				return MoveDescription{}, fmt.Errorf("invalid move description: %q: %w", input, err)
			}
			return SimpleDescriptionOf(piece, lang.Optional[board.File]{}, lang.Some(r), dst), nil
		}
		// file-only: srcFile + dst
		f, ok := board.ParseFile(rest[0])
		if !ok {
			return MoveDescription{}, fmt.Errorf("invalid move description: %q", input)
		}
		dst, err := board.ParseSquare(rest[1], rest[2])
		if err != nil {
			return MoveDescription{}, fmt.Errorf("invalid move description: %q: %w", input, err)
		}
		return SimpleDescriptionOf(piece, lang.Some(f), lang.Optional[board.Rank]{}, dst), nil

	case 2: // none: dst only
		dst, err := board.ParseSquare(rest[0], rest[1])
		if err != nil {
			return MoveDescription{}, fmt.Errorf("invalid move description: %q: %w", input, err)
		}
		return SimpleDescriptionOf(piece, lang.Optional[board.File]{}, lang.Optional[board.Rank]{}, dst), nil

	default:
		return MoveDescription{}, fmt.Errorf("invalid move description: %q", input)
	}
}

// ParseMoves parses a sequence of moves separated by single spaces.
func ParseMoves(input string) ([]MoveDescription, error) {
	fields := strings.Split(input, " ")
	descs := make([]MoveDescription, 0, len(fields))
	for _, f := range fields {
		d, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}
	return descs, nil
}

func parsePieceLetter(r rune) (board.Piece, bool) {
	switch r {
	case 'K':
		return board.King, true
	case 'Q':
		return board.Queen, true
	case 'R':
		return board.Rook, true
	case 'B':
		return board.Bishop, true
	case 'N':
		return board.Knight, true
	default:
		return board.NoPiece, false
	}
}
