// Package fen contains utilities for reading and writing positions in FEN
// notation, plus the boundary validator for externally supplied strings.
package fen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/VietJack/NextMoveGenerator/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// ErrInvalidFEN is returned by Validate for strings that do not satisfy the
// accepted FEN grammar.
var ErrInvalidFEN = errors.New("invalid FEN")

var fenPattern = regexp.MustCompile(`^((([rnbqkpRNBQKP1-8]+/){7})[rnbqkpRNBQKP1-8]+) (b|w) ([KQkq]{1,4}) (-|[a-h][1-8]) (\d+ \d+)$`)

// expand rewrites each digit as that many dashes and drops rank separators,
// leaving one character per tile.
var expand = strings.NewReplacer(
	"/", "",
	"8", "--------",
	"7", "-------",
	"6", "------",
	"5", "-----",
	"4", "----",
	"3", "---",
	"2", "--",
	"1", "-",
)

// collapse is the inverse of expand for a single rank, longest run first.
var collapse = strings.NewReplacer(
	"--------", "8",
	"-------", "7",
	"------", "6",
	"-----", "5",
	"----", "4",
	"---", "3",
	"--", "2",
	"-", "1",
)

// Validate checks an externally supplied FEN string against the accepted
// grammar: six space-separated fields, eight ranks each summing to eight
// tiles with no two consecutive digits. It does not construct a board.
func Validate(fen string) error {
	groups := fenPattern.FindStringSubmatch(fen)
	if groups == nil {
		return fmt.Errorf("%w: '%v' does not match grammar", ErrInvalidFEN, fen)
	}

	for _, rank := range strings.Split(groups[1], "/") {
		sum := 0
		previousWasDigit := false
		for _, r := range rank {
			if unicode.IsDigit(r) {
				if previousWasDigit {
					return fmt.Errorf("%w: two consecutive digits in rank '%v'", ErrInvalidFEN, rank)
				}
				sum += int(r - '0')
				previousWasDigit = true
				continue
			}
			sum++
			previousWasDigit = false
		}
		if sum != board.TilesPerRow {
			return fmt.Errorf("%w: rank '%v' does not sum to %v tiles", ErrInvalidFEN, rank, board.TilesPerRow)
		}
	}
	return nil
}

// Decode returns a new board from a FEN description.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Board, error) {
	// A FEN record contains six space-separated fields: piece placement,
	// active color, castling availability, en passant target, halfmove clock
	// and fullmove number.

	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	// (1) Piece placement from white's perspective, rank 8 first. Digits are
	// runs of blank tiles. Uppercase letters are White pieces, lowercase
	// Black.

	tiles := expand.Replace(parts[0])
	if len(tiles) != board.NumTiles {
		return nil, fmt.Errorf("invalid number of tiles in FEN: '%v'", fen)
	}

	// (3) Castling availability feeds the kings' castle capabilities: "K"
	// (White kingside), "Q" (White queenside), "k" and "q" for Black, or "-".

	whiteKingSide := strings.Contains(parts[2], "K")
	whiteQueenSide := strings.Contains(parts[2], "Q")
	blackKingSide := strings.Contains(parts[2], "k")
	blackQueenSide := strings.Contains(parts[2], "q")

	builder := board.NewBuilder()
	for i, r := range tiles {
		if r == '-' {
			continue
		}

		kind, ok := board.ParsePieceKind(r)
		if !ok {
			return nil, fmt.Errorf("invalid piece '%v' in FEN: '%v'", string(r), fen)
		}
		alliance := board.White
		if unicode.IsLower(r) {
			alliance = board.Black
		}

		if kind == board.King {
			kingSide, queenSide := whiteKingSide, whiteQueenSide
			if alliance == board.Black {
				kingSide, queenSide = blackKingSide, blackQueenSide
			}
			builder.SetPiece(board.NewKing(alliance, i, kingSide, queenSide))
		} else {
			builder.SetPiece(board.NewPiece(kind, alliance, i))
		}
	}

	// (2) Active color: "w" means White moves next, "b" Black.

	active, ok := board.ParseAlliance(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: '%v'", fen)
	}
	builder.SetMoveMaker(active)

	return builder.Build(), nil
}

// Encode returns the FEN description of the board. The halfmove clock and
// fullmove number are not tracked and always encode as "0 1".
func Encode(b *board.Board) string {
	var sb strings.Builder
	for i := 0; i < board.NumTiles; i++ {
		if i > 0 && i%board.TilesPerRow == 0 {
			sb.WriteString("/")
		}
		sb.WriteString(b.Tile(i).String())
	}

	placement := collapse.Replace(sb.String())
	turn := b.CurrentPlayer().Alliance().String()
	castling := encodeCastling(b)
	enPassant := encodeEnPassant(b)

	return fmt.Sprintf("%v %v %v %v 0 1", placement, turn, castling, enPassant)
}

func encodeCastling(b *board.Board) string {
	ret := ""
	if b.WhitePlayer().KingSideCastleCapable() {
		ret += "K"
	}
	if b.WhitePlayer().QueenSideCastleCapable() {
		ret += "Q"
	}
	if b.BlackPlayer().KingSideCastleCapable() {
		ret += "k"
	}
	if b.BlackPlayer().QueenSideCastleCapable() {
		ret += "q"
	}
	if ret == "" {
		return "-"
	}
	return ret
}

// encodeEnPassant returns the square behind the en-passant pawn, or "-".
func encodeEnPassant(b *board.Board) string {
	pawn := b.EnPassantPawn()
	if pawn == nil {
		return "-"
	}
	return board.PositionAt(pawn.Position + pawn.Alliance.OppositeDirection()*board.TilesPerRow)
}
