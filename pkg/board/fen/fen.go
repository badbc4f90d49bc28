// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// Decode parses a canonical FEN prefix into a State: piece placement, side to
// move, castling rights, and en passant target. A halfmove clock and
// fullmove number may follow and are ignored if present; the core does not
// track them. Any failure returns a parse error and no partial State.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
func Decode(fen string) (board.State, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) < 4 {
		return board.State{}, fmt.Errorf("invalid number of sections in FEN: %q", fen)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return board.State{}, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}

	turn, ok := parseSide(parts[1])
	if !ok {
		return board.State{}, fmt.Errorf("invalid active side in FEN: %q", fen)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return board.State{}, fmt.Errorf("invalid castling rights in FEN: %q", fen)
	}

	var ep board.Square
	var hasEP bool
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return board.State{}, fmt.Errorf("invalid en passant target in FEN: %q", fen)
		}
		ep, hasEP = sq, true
	}

	state := board.State{
		Board:    board.FromPlacements(placements),
		Turn:     turn,
		Castling: castling,
	}
	if hasEP {
		state.EnPassant = lang.Some(ep)
	}
	return state, nil
}

// Encode renders a State as a FEN string. The trailing halfmove clock and
// fullmove number are not tracked by the core, so they are emitted as the
// fixed placeholder "0 1".
func Encode(state board.State) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			c := state.Board.PieceAt(board.NewSquare(f, r))
			if c.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				fmt.Fprintf(&sb, "%d", blanks)
				blanks = 0
			}
			sb.WriteRune(printPiece(c.Side, c.Piece))
		}
		if blanks > 0 {
			fmt.Fprintf(&sb, "%d", blanks)
		}
		if r == board.Rank1 {
			break
		}
		sb.WriteString("/")
	}

	ep := "-"
	if sq, ok := state.EnPassant.V(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v 0 1", sb.String(), printSide(state.Turn), state.Castling.String(), ep)
}

func decodePlacement(str string) ([]board.Placement, error) {
	rows := strings.Split(str, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("expected 8 rank rows, got %d", len(rows))
	}

	var placements []board.Placement
	for i, row := range rows {
		rank := board.Rank8 - board.Rank(i)

		file := board.ZeroFile
		for _, r := range row {
			switch {
			case unicode.IsDigit(r):
				n := board.File(r - '0')
				if n < 1 || file+n > board.NumFiles {
					return nil, fmt.Errorf("row too long: %q", row)
				}
				file += n

			case unicode.IsLetter(r):
				piece, ok := board.ParsePiece(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", r)
				}
				if file >= board.NumFiles {
					return nil, fmt.Errorf("row too long: %q", row)
				}
				side := board.White
				if unicode.IsLower(r) {
					side = board.Black
				}
				placements = append(placements, board.Placement{
					Square: board.NewSquare(file, rank),
					Side:   side,
					Piece:  piece,
				})
				file++

			default:
				return nil, fmt.Errorf("invalid character %q", r)
			}
		}
		if file != board.NumFiles {
			return nil, fmt.Errorf("row describes %d squares, want 8: %q", file, row)
		}
	}
	return placements, nil
}

func parseSide(str string) (board.Side, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func printSide(s board.Side) string {
	return s.String()
}

func parseCastling(str string) (board.Castling, bool) {
	var c board.Castling
	if str == "-" {
		return c, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			c |= board.WhiteKingsideCastle
		case 'Q':
			c |= board.WhiteQueensideCastle
		case 'k':
			c |= board.BlackKingsideCastle
		case 'q':
			c |= board.BlackQueensideCastle
		default:
			return 0, false
		}
	}
	return c, true
}

func printPiece(side board.Side, p board.Piece) rune {
	r := []rune(p.String())[0]
	if side == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
