package board_test

import (
	"testing"

	"github.com/VietJack/NextMoveGenerator/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBoard(t *testing.T) {
	b := board.StandardBoard()

	assert.Len(t, b.ActivePieces(board.White), 16)
	assert.Len(t, b.ActivePieces(board.Black), 16)

	empty := 0
	for i := 0; i < board.NumTiles; i++ {
		if !b.Tile(i).Occupied() {
			empty++
		}
	}
	assert.Equal(t, 32, empty)

	assert.Equal(t, board.White, b.CurrentPlayer().Alliance())
	assert.Nil(t, b.EnPassantPawn())

	assert.Len(t, b.WhitePlayer().LegalMoves(), 20)
	assert.Len(t, b.BlackPlayer().LegalMoves(), 20)
	assert.Len(t, b.AllLegalMoves(), 40)

	assert.False(t, b.WhitePlayer().IsInCheck())
	assert.False(t, b.BlackPlayer().IsInCheck())

	king := b.WhitePlayer().King()
	require.NotNil(t, king)
	assert.Equal(t, 60, king.Position)
	assert.True(t, king.IsFirstMove())
}

func TestFindMove(t *testing.T) {
	b := board.StandardBoard()

	m, ok := b.FindMove(52, 36) // e2e4
	require.True(t, ok)
	assert.Equal(t, board.Jump, m.Type)
	assert.Equal(t, board.Pawn, m.Piece.Kind)

	_, ok = b.FindMove(52, 35) // e2d4 is not a move
	assert.False(t, ok)
}

func TestMoveMakerAlternates(t *testing.T) {
	b := board.StandardBoard()

	m, ok := b.FindMove(52, 36)
	require.True(t, ok)

	next := m.Execute()
	assert.Equal(t, board.Black, next.CurrentPlayer().Alliance())

	m2, ok := next.FindMove(12, 28) // e7e5
	require.True(t, ok)
	assert.Equal(t, board.White, m2.Execute().CurrentPlayer().Alliance())
}

func TestActivePiecesMatchTiles(t *testing.T) {
	b := board.StandardBoard()

	for _, a := range []board.Alliance{board.White, board.Black} {
		for _, p := range b.ActivePieces(a) {
			tile := b.Tile(p.Position)
			require.True(t, tile.Occupied())
			assert.Equal(t, a, tile.Piece.Alliance)
			assert.True(t, tile.Piece.Equals(p))
		}
	}
}

func TestBoardString(t *testing.T) {
	lines := 0
	for _, r := range board.StandardBoard().String() {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, 8, lines)
}
