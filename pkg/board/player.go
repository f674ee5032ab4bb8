package board

import "fmt"

// MoveStatus is the outcome of attempting a move.
type MoveStatus uint8

const (
	Done MoveStatus = iota
	Illegal
	LeavesPlayerInCheck
)

func (s MoveStatus) IsDone() bool {
	return s == Done
}

func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "done"
	case Illegal:
		return "illegal"
	case LeavesPlayerInCheck:
		return "leaves player in check"
	default:
		return "?"
	}
}

// MoveTransition is the result of attempting a move: the resulting board (the
// origin board if the move was illegal), the move and its status.
type MoveTransition struct {
	Board  *Board
	Move   *Move
	Status MoveStatus
}

// castleTemplate holds the square constants for one castling variant. The
// four variants differ only in these constants.
type castleTemplate struct {
	moveType        MoveType
	between         []int // squares between king and rook that must be empty
	safe            []int // squares that must not be attacked
	rookStart       int
	kingDestination int
	rookDestination int
}

var castleTemplates = map[Alliance][]castleTemplate{
	White: {
		{moveType: KingSideCastle, between: []int{61, 62}, safe: []int{61, 62}, rookStart: 63, kingDestination: 62, rookDestination: 61},
		{moveType: QueenSideCastle, between: []int{57, 58, 59}, safe: []int{58, 59}, rookStart: 56, kingDestination: 58, rookDestination: 59},
	},
	Black: {
		{moveType: KingSideCastle, between: []int{5, 6}, safe: []int{5, 6}, rookStart: 7, kingDestination: 6, rookDestination: 5},
		{moveType: QueenSideCastle, between: []int{1, 2, 3}, safe: []int{2, 3}, rookStart: 0, kingDestination: 2, rookDestination: 3},
	},
}

// Player is a per-alliance view onto a board: its king, its legal moves with
// castling included, and king-safety predicates.
type Player struct {
	board    *Board
	alliance Alliance

	king       *Piece
	legalMoves []*Move
	inCheck    bool
}

func newPlayer(b *Board, a Alliance, moves, opponentMoves []*Move) *Player {
	p := &Player{
		board:    b,
		alliance: a,
		king:     establishKing(b, a),
	}
	p.inCheck = len(calculateAttacksOnTile(p.king.Position, opponentMoves)) > 0
	p.legalMoves = append(moves, p.calculateKingCastles(opponentMoves)...)
	return p
}

// establishKing locates the alliance's king. Exactly one king per side is an
// invariant of every reachable board.
func establishKing(b *Board, a Alliance) *Piece {
	for _, piece := range b.ActivePieces(a) {
		if piece.Kind == King {
			return piece
		}
	}
	panic(fmt.Sprintf("no %v king on board", a))
}

func (p *Player) Alliance() Alliance {
	return p.alliance
}

func (p *Player) King() *Piece {
	return p.king
}

// Opponent returns the other player view on the same board.
func (p *Player) Opponent() *Player {
	if p.alliance == White {
		return p.board.BlackPlayer()
	}
	return p.board.WhitePlayer()
}

// ActivePieces returns the player's pieces on the board.
func (p *Player) ActivePieces() []*Piece {
	return p.board.ActivePieces(p.alliance)
}

// LegalMoves returns the player's legal moves, castling included. King safety
// is enforced by MakeMove, not here.
func (p *Player) LegalMoves() []*Move {
	return p.legalMoves
}

func (p *Player) IsMoveLegal(m *Move) bool {
	for _, candidate := range p.legalMoves {
		if candidate.Equals(m) {
			return true
		}
	}
	return false
}

func (p *Player) IsInCheck() bool {
	return p.inCheck
}

func (p *Player) IsInCheckmate() bool {
	return p.inCheck && !p.HasEscapeMoves()
}

func (p *Player) IsInStalemate() bool {
	return !p.inCheck && !p.HasEscapeMoves()
}

// IsCastled reports whether the player's king arrived by castling.
func (p *Player) IsCastled() bool {
	return p.king.HasCastled()
}

func (p *Player) KingSideCastleCapable() bool {
	return p.king.KingSideCastleCapable()
}

func (p *Player) QueenSideCastleCapable() bool {
	return p.king.QueenSideCastleCapable()
}

// HasEscapeMoves reports whether any legal move survives the king-safety
// filter.
func (p *Player) HasEscapeMoves() bool {
	for _, m := range p.legalMoves {
		if p.MakeMove(m).Status.IsDone() {
			return true
		}
	}
	return false
}

// MakeMove attempts the move. An illegal move returns the origin board; a
// move that leaves the mover's king attacked returns the successor board with
// status LeavesPlayerInCheck; otherwise the successor board with status Done.
func (p *Player) MakeMove(m *Move) MoveTransition {
	if !p.IsMoveLegal(m) {
		return MoveTransition{Board: p.board, Move: m, Status: Illegal}
	}

	next := m.Execute()

	// The mover is the current player's opponent on the successor board. The
	// move stands only if no successor-side move attacks the mover's king.
	mover := next.CurrentPlayer().Opponent()
	attacks := calculateAttacksOnTile(mover.King().Position, next.CurrentPlayer().LegalMoves())
	if len(attacks) > 0 {
		return MoveTransition{Board: next, Move: m, Status: LeavesPlayerInCheck}
	}
	return MoveTransition{Board: next, Move: m, Status: Done}
}

// calculateKingCastles generates the player's castling moves. Castling is
// considered only for an unmoved, unchecked king that retains a castle
// capability.
func (p *Player) calculateKingCastles(opponentMoves []*Move) []*Move {
	if !p.king.IsFirstMove() || p.inCheck {
		return nil
	}
	if !p.king.KingSideCastleCapable() && !p.king.QueenSideCastleCapable() {
		return nil
	}

	var castles []*Move
	for _, t := range castleTemplates[p.alliance] {
		if !p.castleAllowed(t, opponentMoves) {
			continue
		}
		rook := p.board.Tile(t.rookStart).Piece
		castles = append(castles, NewCastleMove(p.board, t.moveType, p.king, t.kingDestination, rook, t.rookStart, t.rookDestination))
	}
	return castles
}

func (p *Player) castleAllowed(t castleTemplate, opponentMoves []*Move) bool {
	for _, coordinate := range t.between {
		if p.board.Tile(coordinate).Occupied() {
			return false
		}
	}

	rookTile := p.board.Tile(t.rookStart)
	if !rookTile.Occupied() {
		return false
	}
	rook := rookTile.Piece
	if rook.Kind != Rook || !rook.IsFirstMove() || rook.Alliance != p.alliance {
		return false
	}

	for _, coordinate := range t.safe {
		if len(calculateAttacksOnTile(coordinate, opponentMoves)) > 0 {
			return false
		}
	}
	return true
}

// calculateAttacksOnTile returns the moves whose destination is the given
// coordinate.
func calculateAttacksOnTile(position int, moves []*Move) []*Move {
	var attacks []*Move
	for _, m := range moves {
		if m.Destination == position {
			attacks = append(attacks, m)
		}
	}
	return attacks
}

func (p *Player) String() string {
	if p.alliance == White {
		return "white"
	}
	return "black"
}
