package render_test

import (
	"strings"
	"testing"

	"github.com/mjhoy/chess/pkg/board"
	"github.com/mjhoy/chess/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestBoardRendersAllRanks(t *testing.T) {
	out := render.Board(board.Initial())
	for _, label := range []string{"8", "7", "6", "5", "4", "3", "2", "1"} {
		assert.True(t, strings.Contains(out, label))
	}
}
