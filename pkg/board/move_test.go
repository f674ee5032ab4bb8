package board_test

import (
	"testing"

	"github.com/VietJack/NextMoveGenerator/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteNormalMove(t *testing.T) {
	wk, bk := kings()
	knight := board.NewPiece(board.Knight, board.White, 57) // b1
	b := build(board.White, wk, bk, knight)

	m, ok := b.FindMove(57, 42) // b1c3
	require.True(t, ok)

	next := m.Execute()
	assert.False(t, next.Tile(57).Occupied())

	moved := next.Tile(42).Piece
	require.NotNil(t, moved)
	assert.Equal(t, board.Knight, moved.Kind)
	assert.False(t, moved.IsFirstMove())
	assert.Equal(t, board.Black, next.CurrentPlayer().Alliance())

	// The parent board is untouched.
	assert.True(t, knight.Equals(b.Tile(57).Piece))
}

func TestExecuteCapture(t *testing.T) {
	wk, bk := kings()
	rook := board.NewPiece(board.Rook, board.White, 56)  // a1
	enemy := board.NewPiece(board.Pawn, board.Black, 32) // a4
	b := build(board.White, wk, bk, rook, enemy)

	m, ok := b.FindMove(56, 32)
	require.True(t, ok)
	assert.Equal(t, board.Capture, m.Type)

	next := m.Execute()
	captured := next.Tile(32).Piece
	require.NotNil(t, captured)
	assert.Equal(t, board.Rook, captured.Kind)
	assert.Equal(t, board.White, captured.Alliance)
	assert.Len(t, next.ActivePieces(board.Black), 1) // the king only
}

func TestExecuteJumpSetsEnPassantPawn(t *testing.T) {
	wk, bk := kings()
	pawn := board.NewPiece(board.Pawn, board.White, 52)
	b := build(board.White, wk, bk, pawn)

	m, ok := b.FindMove(52, 36)
	require.True(t, ok)

	next := m.Execute()
	require.NotNil(t, next.EnPassantPawn())
	assert.Equal(t, 36, next.EnPassantPawn().Position)
	assert.Equal(t, board.White, next.EnPassantPawn().Alliance)
	assert.True(t, next.EnPassantPawn().Equals(next.Tile(36).Piece))
}

func TestExecuteEnPassant(t *testing.T) {
	wk, bk := kings()
	white := board.NewPiece(board.Pawn, board.White, 52) // e2
	black := board.NewPiece(board.Pawn, board.Black, 35) // d4
	b := build(board.White, wk, bk, white, black)

	jump, ok := b.FindMove(52, 36)
	require.True(t, ok)
	next := jump.Execute()

	ep, ok := next.FindMove(35, 44)
	require.True(t, ok)
	require.Equal(t, board.EnPassant, ep.Type)

	after := ep.Execute()
	assert.False(t, after.Tile(36).Occupied(), "captured pawn removed from e4")
	assert.False(t, after.Tile(35).Occupied())

	moved := after.Tile(44).Piece
	require.NotNil(t, moved)
	assert.Equal(t, board.Pawn, moved.Kind)
	assert.Equal(t, board.Black, moved.Alliance)
	assert.Len(t, after.ActivePieces(board.White), 1)
	assert.Nil(t, after.EnPassantPawn())
}

func TestExecutePromotion(t *testing.T) {
	wk, bk := kings()
	pawn := board.NewPiece(board.Pawn, board.White, 8) // a7
	b := build(board.White, wk, bk, pawn)

	m, ok := b.FindMove(8, 0)
	require.True(t, ok)
	require.Equal(t, board.Promotion, m.Type)

	next := m.Execute()
	queen := next.Tile(0).Piece
	require.NotNil(t, queen)
	assert.Equal(t, board.Queen, queen.Kind)
	assert.Equal(t, board.White, queen.Alliance)
	assert.False(t, queen.IsFirstMove())
	assert.False(t, next.Tile(8).Occupied())
	assert.Equal(t, board.Black, next.CurrentPlayer().Alliance())

	for _, p := range next.ActivePieces(board.White) {
		assert.NotEqual(t, board.Pawn, p.Kind)
	}
}

func TestExecutePromotionCapture(t *testing.T) {
	wk, bk := kings()
	pawn := board.NewPiece(board.Pawn, board.White, 8)    // a7
	target := board.NewPiece(board.Knight, board.Black, 1) // b8
	b := build(board.White, wk, bk, pawn, target)

	m, ok := b.FindMove(8, 1)
	require.True(t, ok)
	require.Equal(t, board.Promotion, m.Type)
	assert.True(t, m.IsAttack())
	assert.True(t, target.Equals(m.AttackedPiece()))

	next := m.Execute()
	queen := next.Tile(1).Piece
	require.NotNil(t, queen)
	assert.Equal(t, board.Queen, queen.Kind)
	assert.Len(t, next.ActivePieces(board.Black), 1)
}

func TestExecuteKingSideCastle(t *testing.T) {
	wk := board.NewKing(board.White, 60, true, false)
	bk := board.NewKing(board.Black, 4, false, false)
	rook := board.NewPiece(board.Rook, board.White, 63)
	b := build(board.White, wk, bk, rook)

	m, ok := b.FindMove(60, 62)
	require.True(t, ok)
	require.Equal(t, board.KingSideCastle, m.Type)
	assert.Equal(t, "0-0", m.String())

	next := m.Execute()
	king := next.Tile(62).Piece
	require.NotNil(t, king)
	assert.Equal(t, board.King, king.Kind)
	assert.True(t, king.HasCastled())
	assert.True(t, next.WhitePlayer().IsCastled())

	newRook := next.Tile(61).Piece
	require.NotNil(t, newRook)
	assert.Equal(t, board.Rook, newRook.Kind)
	assert.False(t, newRook.IsFirstMove())
	assert.False(t, next.Tile(60).Occupied())
	assert.False(t, next.Tile(63).Occupied())
}

func TestExecuteQueenSideCastle(t *testing.T) {
	wk := board.NewKing(board.White, 60, false, true)
	bk := board.NewKing(board.Black, 4, false, false)
	rook := board.NewPiece(board.Rook, board.White, 56)
	b := build(board.White, wk, bk, rook)

	m, ok := b.FindMove(60, 58)
	require.True(t, ok)
	require.Equal(t, board.QueenSideCastle, m.Type)
	assert.Equal(t, "0-0-0", m.String())

	next := m.Execute()
	assert.True(t, next.WhitePlayer().IsCastled())
	require.NotNil(t, next.Tile(59).Piece)
	assert.Equal(t, board.Rook, next.Tile(59).Piece.Kind)
}

func TestMoveEquals(t *testing.T) {
	b := board.StandardBoard()

	m1, ok := b.FindMove(52, 36)
	require.True(t, ok)
	m2, ok := b.FindMove(52, 36)
	require.True(t, ok)
	m3, ok := b.FindMove(51, 35)
	require.True(t, ok)

	assert.True(t, m1.Equals(m2))
	assert.False(t, m1.Equals(m3))
	assert.False(t, m1.Equals(nil))
}
