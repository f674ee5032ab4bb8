package board

import "strings"

// Builder accumulates the configuration of a board snapshot: pieces keyed by
// coordinate, the side to move next and an optional en-passant pawn. Setting
// a piece on an occupied coordinate replaces the previous occupant.
type Builder struct {
	config        map[int]*Piece
	nextMoveMaker Alliance
	enPassantPawn *Piece
}

func NewBuilder() *Builder {
	return &Builder{config: map[int]*Piece{}}
}

func (b *Builder) SetPiece(p *Piece) *Builder {
	b.config[p.Position] = p
	return b
}

func (b *Builder) SetMoveMaker(a Alliance) *Builder {
	b.nextMoveMaker = a
	return b
}

func (b *Builder) SetEnPassantPawn(p *Piece) *Builder {
	b.enPassantPawn = p
	return b
}

// Build constructs the immutable board: tiles, active piece lists, both
// pseudo-legal move lists, and finally the two player views holding those
// moves plus castling. Panics if either side is missing its king.
func (b *Builder) Build() *Board {
	board := &Board{enPassantPawn: b.enPassantPawn}

	for i := 0; i < NumTiles; i++ {
		board.tiles[i] = Tile{Coordinate: i, Piece: b.config[i]}
	}
	board.whitePieces = board.calculateActivePieces(White)
	board.blackPieces = board.calculateActivePieces(Black)

	whiteMoves := board.calculatePseudoLegalMoves(board.whitePieces)
	blackMoves := board.calculatePseudoLegalMoves(board.blackPieces)

	board.white = newPlayer(board, White, whiteMoves, blackMoves)
	board.black = newPlayer(board, Black, blackMoves, whiteMoves)
	board.current = b.nextMoveMaker.ChoosePlayer(board.white, board.black)
	return board
}

// Board is an immutable snapshot of a position: 64 tiles, active pieces per
// side, the en-passant pawn if the previous move was a pawn jump, and the two
// player views with their legal moves. Boards are never mutated; executing a
// move produces a fresh board.
type Board struct {
	tiles         [NumTiles]Tile
	whitePieces   []*Piece
	blackPieces   []*Piece
	enPassantPawn *Piece

	white, black *Player
	current      *Player
}

// StandardBoard returns the standard chess start position with White to move.
func StandardBoard() *Board {
	builder := NewBuilder()

	builder.SetPiece(NewPiece(Rook, Black, 0))
	builder.SetPiece(NewPiece(Knight, Black, 1))
	builder.SetPiece(NewPiece(Bishop, Black, 2))
	builder.SetPiece(NewPiece(Queen, Black, 3))
	builder.SetPiece(NewKing(Black, 4, true, true))
	builder.SetPiece(NewPiece(Bishop, Black, 5))
	builder.SetPiece(NewPiece(Knight, Black, 6))
	builder.SetPiece(NewPiece(Rook, Black, 7))
	for i := 8; i < 16; i++ {
		builder.SetPiece(NewPiece(Pawn, Black, i))
	}

	for i := 48; i < 56; i++ {
		builder.SetPiece(NewPiece(Pawn, White, i))
	}
	builder.SetPiece(NewPiece(Rook, White, 56))
	builder.SetPiece(NewPiece(Knight, White, 57))
	builder.SetPiece(NewPiece(Bishop, White, 58))
	builder.SetPiece(NewPiece(Queen, White, 59))
	builder.SetPiece(NewKing(White, 60, true, true))
	builder.SetPiece(NewPiece(Bishop, White, 61))
	builder.SetPiece(NewPiece(Knight, White, 62))
	builder.SetPiece(NewPiece(Rook, White, 63))

	builder.SetMoveMaker(White)
	return builder.Build()
}

func (b *Board) Tile(coordinate int) Tile {
	return b.tiles[coordinate]
}

// ActivePieces returns the pieces of the alliance on the board.
func (b *Board) ActivePieces(a Alliance) []*Piece {
	if a == White {
		return b.whitePieces
	}
	return b.blackPieces
}

// EnPassantPawn returns the pawn that just made a 2-square move, or nil.
func (b *Board) EnPassantPawn() *Piece {
	return b.enPassantPawn
}

func (b *Board) WhitePlayer() *Player {
	return b.white
}

func (b *Board) BlackPlayer() *Player {
	return b.black
}

// CurrentPlayer returns the designated mover.
func (b *Board) CurrentPlayer() *Player {
	return b.current
}

// AllLegalMoves returns the legal moves of both players.
func (b *Board) AllLegalMoves() []*Move {
	moves := make([]*Move, 0, len(b.white.legalMoves)+len(b.black.legalMoves))
	moves = append(moves, b.white.legalMoves...)
	moves = append(moves, b.black.legalMoves...)
	return moves
}

// FindMove locates a legal move by origin and destination coordinate.
func (b *Board) FindMove(origin, destination int) (*Move, bool) {
	for _, m := range b.AllLegalMoves() {
		if m.Origin() == origin && m.Destination == destination {
			return m, true
		}
	}
	return nil, false
}

func (b *Board) calculateActivePieces(a Alliance) []*Piece {
	var pieces []*Piece
	for _, tile := range b.tiles {
		if tile.Occupied() && tile.Piece.Alliance == a {
			pieces = append(pieces, tile.Piece)
		}
	}
	return pieces
}

func (b *Board) calculatePseudoLegalMoves(pieces []*Piece) []*Move {
	var moves []*Move
	for _, p := range pieces {
		moves = append(moves, p.PseudoLegalMoves(b)...)
	}
	return moves
}

// String renders the board as an 8x8 grid of piece letters, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < NumTiles; i++ {
		sb.WriteString("  ")
		sb.WriteString(b.tiles[i].String())
		if i%TilesPerRow == TilesPerRow-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
