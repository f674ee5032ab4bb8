package board_test

import (
	"testing"

	"github.com/VietJack/NextMoveGenerator/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestValidCoordinate(t *testing.T) {
	assert.True(t, board.ValidCoordinate(0))
	assert.True(t, board.ValidCoordinate(63))
	assert.False(t, board.ValidCoordinate(-1))
	assert.False(t, board.ValidCoordinate(64))
}

func TestPositionAt(t *testing.T) {
	tests := []struct {
		coordinate int
		expected   string
	}{
		{0, "a8"},
		{7, "h8"},
		{36, "e4"},
		{56, "a1"},
		{60, "e1"},
		{63, "h1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, board.PositionAt(tt.coordinate))

		coordinate, ok := board.ParsePosition(tt.expected)
		assert.True(t, ok)
		assert.Equal(t, tt.coordinate, coordinate)
	}

	_, ok := board.ParsePosition("j9")
	assert.False(t, ok)
}

func TestColumnAndRankTables(t *testing.T) {
	for i := 0; i < board.NumTiles; i++ {
		assert.Equal(t, i%8 == 0, board.FirstColumn[i], "first column at %v", i)
		assert.Equal(t, i%8 == 7, board.EighthColumn[i], "eighth column at %v", i)
		assert.Equal(t, i < 8, board.EighthRank[i], "eighth rank at %v", i)
		assert.Equal(t, i >= 56, board.FirstRank[i], "first rank at %v", i)
		assert.Equal(t, i >= 48 && i < 56, board.SecondRank[i], "second rank at %v", i)
		assert.Equal(t, i >= 8 && i < 16, board.SeventhRank[i], "seventh rank at %v", i)
	}
}

func TestAllianceDirections(t *testing.T) {
	assert.Equal(t, -1, board.White.Direction())
	assert.Equal(t, 1, board.White.OppositeDirection())
	assert.Equal(t, 1, board.Black.Direction())
	assert.Equal(t, -1, board.Black.OppositeDirection())

	assert.Equal(t, board.Black, board.White.Opponent())
	assert.Equal(t, board.White, board.Black.Opponent())

	assert.True(t, board.White.IsPawnPromotionSquare(0))
	assert.False(t, board.White.IsPawnPromotionSquare(56))
	assert.True(t, board.Black.IsPawnPromotionSquare(56))
	assert.False(t, board.Black.IsPawnPromotionSquare(0))
}
