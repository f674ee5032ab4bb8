package board

import "strings"

// PieceKind identifies a kind of chess piece with no alliance.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// ParsePieceKind parses a FEN piece letter, either case.
func ParsePieceKind(r rune) (PieceKind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return 0, false
	}
}

// Value returns the nominal material value of the kind in centipawns. The
// King carries an arbitrary dominant value.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 100
	case Knight:
		return 300
	case Bishop:
		return 300
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 10000
	default:
		return 0
	}
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Piece is a piece on the board: kind, alliance, coordinate and a first-move
// flag consumed by pawn jumps and castling. Kings additionally carry castle
// capabilities and whether they have castled. Pieces are never mutated; the
// successor of a move is a fresh piece produced by Apply.
type Piece struct {
	Kind     PieceKind
	Alliance Alliance
	Position int

	firstMove bool

	// King only.
	kingSideCastleCapable  bool
	queenSideCastleCapable bool
	castled                bool
}

// NewPiece returns a piece that has not yet moved.
func NewPiece(kind PieceKind, alliance Alliance, position int) *Piece {
	return &Piece{Kind: kind, Alliance: alliance, Position: position, firstMove: true}
}

// NewKing returns an unmoved king with the given castle capabilities.
func NewKing(alliance Alliance, position int, kingSideCastleCapable, queenSideCastleCapable bool) *Piece {
	return &Piece{
		Kind:                   King,
		Alliance:               alliance,
		Position:               position,
		firstMove:              true,
		kingSideCastleCapable:  kingSideCastleCapable,
		queenSideCastleCapable: queenSideCastleCapable,
	}
}

func (p *Piece) IsFirstMove() bool {
	return p.firstMove
}

func (p *Piece) KingSideCastleCapable() bool {
	return p.kingSideCastleCapable
}

func (p *Piece) QueenSideCastleCapable() bool {
	return p.queenSideCastleCapable
}

// HasCastled reports whether the king arrived at its square by castling.
func (p *Piece) HasCastled() bool {
	return p.castled
}

// Value returns the material value of the piece in centipawns.
func (p *Piece) Value() int {
	return p.Kind.Value()
}

// Apply returns the successor piece after executing the move: the same kind
// and alliance at the destination, with the first-move flag cleared. A king
// successor records whether the move was a castle and loses its castle
// capabilities.
func (p *Piece) Apply(m *Move) *Piece {
	if p.Kind == King {
		return &Piece{Kind: King, Alliance: p.Alliance, Position: m.Destination, castled: m.IsCastling()}
	}
	return &Piece{Kind: p.Kind, Alliance: p.Alliance, Position: m.Destination}
}

// Equals reports structural equality over kind, position, alliance and the
// first-move flag.
func (p *Piece) Equals(o *Piece) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Kind == o.Kind && p.Position == o.Position && p.Alliance == o.Alliance && p.firstMove == o.firstMove
}

// String returns the FEN letter of the piece: uppercase for White, lowercase
// for Black.
func (p *Piece) String() string {
	if p.Alliance == Black {
		return strings.ToLower(p.Kind.String())
	}
	return p.Kind.String()
}
