// Package board contains the chess board representation and move model: an
// 8x8 tile grid ordered A8=0 .. H1=63, immutable board snapshots, piece-wise
// pseudo-legal move generation and per-side player views.
package board

const (
	NumTiles    = 64
	TilesPerRow = 8
)

// Column and rank membership tables, indexed by coordinate. Built once at
// package initialization, before any board can be constructed.
var (
	FirstColumn   = initColumn(0)
	SecondColumn  = initColumn(1)
	SeventhColumn = initColumn(6)
	EighthColumn  = initColumn(7)

	EighthRank  = initRow(0)
	SeventhRank = initRow(8)
	SixthRank   = initRow(16)
	FifthRank   = initRow(24)
	FourthRank  = initRow(32)
	ThirdRank   = initRow(40)
	SecondRank  = initRow(48)
	FirstRank   = initRow(56)
)

// algebraicNotation maps a coordinate to its two-character square name.
var algebraicNotation = [NumTiles]string{
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
}

// ValidCoordinate reports whether the coordinate lies on the board.
func ValidCoordinate(coordinate int) bool {
	return coordinate >= 0 && coordinate < NumTiles
}

// PositionAt returns the algebraic name of the coordinate, "a8" .. "h1".
func PositionAt(coordinate int) string {
	return algebraicNotation[coordinate]
}

// ParsePosition returns the coordinate of an algebraic square name.
func ParsePosition(str string) (int, bool) {
	for i, name := range algebraicNotation {
		if name == str {
			return i, true
		}
	}
	return 0, false
}

func initRow(begin int) [NumTiles]bool {
	var row [NumTiles]bool
	row[begin] = true
	begin++
	for begin%TilesPerRow != 0 {
		row[begin] = true
		begin++
	}
	return row
}

func initColumn(column int) [NumTiles]bool {
	var col [NumTiles]bool
	for column < NumTiles {
		col[column] = true
		column += TilesPerRow
	}
	return col
}
