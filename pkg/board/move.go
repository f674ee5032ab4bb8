package board

import "fmt"

// MoveType tags the kind of move. Each type produces its successor board
// differently.
type MoveType uint8

const (
	Normal      MoveType = iota // quiet move by any non-pawn piece
	Capture                     // non-pawn capture
	Push                        // pawn single push
	Jump                        // pawn 2-square move; sets the en-passant pawn
	PawnCapture                 // pawn diagonal capture
	EnPassant                   // implicitly a pawn capture beside the destination
	Promotion                   // wrapper over a Push or PawnCapture; promotes to Queen
	KingSideCastle
	QueenSideCastle
)

// Move represents a move of a single piece with enough context to produce the
// successor board. A move references the board it was generated on.
type Move struct {
	Type        MoveType
	Piece       *Piece
	Destination int

	Attacked *Piece // captured piece for Capture, PawnCapture and EnPassant
	Inner    *Move  // wrapped move for Promotion

	Rook            *Piece // castle rook for castling moves
	RookStart       int
	RookDestination int

	board *Board
}

func NewNormalMove(b *Board, piece *Piece, destination int) *Move {
	return &Move{Type: Normal, Piece: piece, Destination: destination, board: b}
}

func NewCaptureMove(b *Board, piece *Piece, destination int, attacked *Piece) *Move {
	return &Move{Type: Capture, Piece: piece, Destination: destination, Attacked: attacked, board: b}
}

func NewPushMove(b *Board, pawn *Piece, destination int) *Move {
	return &Move{Type: Push, Piece: pawn, Destination: destination, board: b}
}

func NewJumpMove(b *Board, pawn *Piece, destination int) *Move {
	return &Move{Type: Jump, Piece: pawn, Destination: destination, board: b}
}

func NewPawnCaptureMove(b *Board, pawn *Piece, destination int, attacked *Piece) *Move {
	return &Move{Type: PawnCapture, Piece: pawn, Destination: destination, Attacked: attacked, board: b}
}

func NewEnPassantMove(b *Board, pawn *Piece, destination int, attacked *Piece) *Move {
	return &Move{Type: EnPassant, Piece: pawn, Destination: destination, Attacked: attacked, board: b}
}

// NewPromotionMove wraps a Push or PawnCapture that reaches the promotion
// rank. The promotion piece is fixed to Queen.
func NewPromotionMove(inner *Move) *Move {
	return &Move{
		Type:        Promotion,
		Piece:       inner.Piece,
		Destination: inner.Destination,
		Attacked:    inner.Attacked,
		Inner:       inner,
		board:       inner.board,
	}
}

func NewCastleMove(b *Board, t MoveType, king *Piece, destination int, rook *Piece, rookStart, rookDestination int) *Move {
	return &Move{
		Type:            t,
		Piece:           king,
		Destination:     destination,
		Rook:            rook,
		RookStart:       rookStart,
		RookDestination: rookDestination,
		board:           b,
	}
}

// Origin returns the coordinate the moved piece departs from.
func (m *Move) Origin() int {
	return m.Piece.Position
}

// Board returns the board the move was generated on.
func (m *Move) Board() *Board {
	return m.board
}

// IsAttack reports whether the move captures a piece.
func (m *Move) IsAttack() bool {
	switch m.Type {
	case Capture, PawnCapture, EnPassant:
		return true
	case Promotion:
		return m.Inner.IsAttack()
	default:
		return false
	}
}

// AttackedPiece returns the captured piece, or nil.
func (m *Move) AttackedPiece() *Piece {
	if m.Type == Promotion {
		return m.Inner.AttackedPiece()
	}
	return m.Attacked
}

func (m *Move) IsCastling() bool {
	return m.Type == KingSideCastle || m.Type == QueenSideCastle
}

// Execute produces the successor board. The parent board is not modified.
func (m *Move) Execute() *Board {
	switch m.Type {
	case Jump:
		builder := m.copyPieces(nil)
		pawn := m.Piece.Apply(m)
		builder.SetPiece(pawn)
		builder.SetEnPassantPawn(pawn)
		builder.SetMoveMaker(m.Piece.Alliance.Opponent())
		return builder.Build()

	case EnPassant:
		// The attacked pawn is beside the destination, so placing the capturing
		// pawn cannot displace it. It must be excluded from the opponent copy.
		builder := m.copyPieces(m.Attacked)
		builder.SetPiece(m.Piece.Apply(m))
		builder.SetMoveMaker(m.Piece.Alliance.Opponent())
		return builder.Build()

	case Promotion:
		// Execute the wrapped pawn move, then rebuild with a queen on the
		// destination in place of the pawn.
		moved := m.Inner.Execute()
		builder := NewBuilder()
		for _, p := range moved.ActivePieces(White) {
			builder.SetPiece(p)
		}
		for _, p := range moved.ActivePieces(Black) {
			builder.SetPiece(p)
		}
		builder.SetPiece(&Piece{Kind: Queen, Alliance: m.Piece.Alliance, Position: m.Destination})
		builder.SetMoveMaker(moved.CurrentPlayer().Alliance())
		return builder.Build()

	case KingSideCastle, QueenSideCastle:
		builder := NewBuilder()
		for _, p := range m.board.ActivePieces(m.Piece.Alliance) {
			if !p.Equals(m.Piece) && !p.Equals(m.Rook) {
				builder.SetPiece(p)
			}
		}
		for _, p := range m.board.ActivePieces(m.Piece.Alliance.Opponent()) {
			builder.SetPiece(p)
		}
		builder.SetPiece(m.Piece.Apply(m))
		builder.SetPiece(&Piece{Kind: Rook, Alliance: m.Rook.Alliance, Position: m.RookDestination})
		builder.SetMoveMaker(m.Piece.Alliance.Opponent())
		return builder.Build()

	default: // Normal, Capture, Push, PawnCapture
		// A captured piece shares the destination square, so placing the moved
		// piece last removes it from the successor.
		builder := m.copyPieces(nil)
		builder.SetPiece(m.Piece.Apply(m))
		builder.SetMoveMaker(m.Piece.Alliance.Opponent())
		return builder.Build()
	}
}

// copyPieces copies every mover-side piece except the moved one and every
// opponent piece except exceptOpponent, if given.
func (m *Move) copyPieces(exceptOpponent *Piece) *Builder {
	builder := NewBuilder()
	for _, p := range m.board.ActivePieces(m.Piece.Alliance) {
		if !p.Equals(m.Piece) {
			builder.SetPiece(p)
		}
	}
	for _, p := range m.board.ActivePieces(m.Piece.Alliance.Opponent()) {
		if exceptOpponent == nil || !p.Equals(exceptOpponent) {
			builder.SetPiece(p)
		}
	}
	return builder
}

// Equals reports whether two moves denote the same transition: same type,
// moved piece, destination and captured piece.
func (m *Move) Equals(o *Move) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Type != o.Type || m.Destination != o.Destination || !m.Piece.Equals(o.Piece) {
		return false
	}
	if m.AttackedPiece() == nil || o.AttackedPiece() == nil {
		return m.AttackedPiece() == o.AttackedPiece()
	}
	return m.AttackedPiece().Equals(o.AttackedPiece())
}

func (m *Move) String() string {
	switch m.Type {
	case KingSideCastle:
		return "0-0"
	case QueenSideCastle:
		return "0-0-0"
	default:
		return fmt.Sprintf("%v : %v --> %v", m.Piece, PositionAt(m.Origin()), PositionAt(m.Destination))
	}
}
