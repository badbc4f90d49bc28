// Package render draws a Board as a readable 8x8 terminal grid. It is a
// presentational collaborator: nothing in the rules engine core depends on
// it.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mjhoy/chess/pkg/board"
)

var (
	lightSquare = lipgloss.NewStyle().
			Background(lipgloss.Color("253")).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1)
	darkSquare = lipgloss.NewStyle().
			Background(lipgloss.Color("65")).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1)
	whitePiece = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	blackPiece = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232"))
	label      = lipgloss.NewStyle().Faint(true)
)

// Board renders b as an 8x8 grid, rank 8 at the top, with rank and file
// labels, using alternating light/dark square colors.
func Board(b board.Board) string {
	var sb strings.Builder

	for r := board.Rank8; ; r-- {
		sb.WriteString(label.Render(r.String()))
		sb.WriteString(" ")
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			sq := board.NewSquare(f, r)
			sb.WriteString(renderSquare(b, sq))
		}
		sb.WriteString("\n")
		if r == board.Rank1 {
			break
		}
	}

	sb.WriteString("  ")
	for f := board.ZeroFile; f < board.NumFiles; f++ {
		sb.WriteString(label.Render(" " + f.String() + " "))
	}
	return sb.String()
}

func renderSquare(b board.Board, sq board.Square) string {
	style := lightSquare
	if (int(sq.Rank())+int(sq.File()))%2 == 0 {
		style = darkSquare
	}

	content := b.PieceAt(sq)
	glyph := " "
	if !content.IsEmpty() {
		glyph = glyphFor(content.Piece)
		if content.Side == board.White {
			glyph = whitePiece.Render(glyph)
		} else {
			glyph = blackPiece.Render(glyph)
		}
	}
	return style.Render(glyph)
}

func glyphFor(p board.Piece) string {
	switch p {
	case board.Pawn:
		return "P"
	case board.Knight:
		return "N"
	case board.Bishop:
		return "B"
	case board.Rook:
		return "R"
	case board.Queen:
		return "Q"
	case board.King:
		return "K"
	default:
		return " "
	}
}
