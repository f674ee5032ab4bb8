package board

// Candidate move offsets per piece kind. Offsets are applied to the 0..63
// coordinate, so every kind needs edge exclusions to reject offsets that
// would wrap across the a/h files.
var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	bishopOffsets = []int{-9, -7, 7, 9}
	rookOffsets   = []int{-8, -1, 1, 8}
	queenOffsets  = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	pawnOffsets   = []int{8, 16, 7, 9}
)

func knightExcluded(position, candidate int) bool {
	switch {
	case FirstColumn[position]:
		return candidate == -17 || candidate == -10 || candidate == 6 || candidate == 15
	case SecondColumn[position]:
		return candidate == -10 || candidate == 6
	case SeventhColumn[position]:
		return candidate == -6 || candidate == 10
	case EighthColumn[position]:
		return candidate == -15 || candidate == -6 || candidate == 10 || candidate == 17
	default:
		return false
	}
}

func bishopExcluded(position, candidate int) bool {
	if FirstColumn[position] {
		return candidate == -9 || candidate == 7
	}
	if EighthColumn[position] {
		return candidate == -7 || candidate == 9
	}
	return false
}

func rookExcluded(position, candidate int) bool {
	if FirstColumn[position] {
		return candidate == -1
	}
	if EighthColumn[position] {
		return candidate == 1
	}
	return false
}

func queenExcluded(position, candidate int) bool {
	return bishopExcluded(position, candidate) || rookExcluded(position, candidate)
}

// PseudoLegalMoves generates the moves permitted by the piece's movement
// rules on the given board, without regard to king safety. Castling is
// contributed by the Player, not the King.
func (p *Piece) PseudoLegalMoves(b *Board) []*Move {
	switch p.Kind {
	case Knight:
		return p.stepMoves(b, knightOffsets, knightExcluded)
	case Bishop:
		return p.slideMoves(b, bishopOffsets, bishopExcluded)
	case Rook:
		return p.slideMoves(b, rookOffsets, rookExcluded)
	case Queen:
		return p.slideMoves(b, queenOffsets, queenExcluded)
	case King:
		return p.stepMoves(b, queenOffsets, queenExcluded)
	case Pawn:
		return p.pawnMoves(b)
	default:
		return nil
	}
}

// stepMoves generates single-step moves for knights and kings.
func (p *Piece) stepMoves(b *Board, offsets []int, excluded func(position, candidate int) bool) []*Move {
	var moves []*Move
	for _, candidate := range offsets {
		if excluded(p.Position, candidate) {
			continue
		}
		destination := p.Position + candidate
		if !ValidCoordinate(destination) {
			continue
		}

		tile := b.Tile(destination)
		if !tile.Occupied() {
			moves = append(moves, NewNormalMove(b, p, destination))
		} else if tile.Piece.Alliance != p.Alliance {
			moves = append(moves, NewCaptureMove(b, p, destination, tile.Piece))
		}
	}
	return moves
}

// slideMoves generates ray moves for bishops, rooks and queens. The edge
// exclusion is re-evaluated at each step so a ray stops where continuing
// would wrap across the board edge.
func (p *Piece) slideMoves(b *Board, offsets []int, excluded func(position, candidate int) bool) []*Move {
	var moves []*Move
	for _, candidate := range offsets {
		destination := p.Position
		for ValidCoordinate(destination) {
			if excluded(destination, candidate) {
				break
			}
			destination += candidate
			if !ValidCoordinate(destination) {
				break
			}

			tile := b.Tile(destination)
			if !tile.Occupied() {
				moves = append(moves, NewNormalMove(b, p, destination))
				continue
			}
			if tile.Piece.Alliance != p.Alliance {
				moves = append(moves, NewCaptureMove(b, p, destination, tile.Piece))
			}
			break
		}
	}
	return moves
}

func (p *Piece) pawnMoves(b *Board) []*Move {
	var moves []*Move
	direction := p.Alliance.Direction()

	for _, candidate := range pawnOffsets {
		destination := p.Position + direction*candidate
		if !ValidCoordinate(destination) {
			continue
		}

		switch candidate {
		case 8:
			if b.Tile(destination).Occupied() {
				continue
			}
			if p.Alliance.IsPawnPromotionSquare(destination) {
				moves = append(moves, NewPromotionMove(NewPushMove(b, p, destination)))
			} else {
				moves = append(moves, NewPushMove(b, p, destination))
			}

		case 16:
			home := (SeventhRank[p.Position] && p.Alliance == Black) ||
				(SecondRank[p.Position] && p.Alliance == White)
			if !p.firstMove || !home {
				continue
			}
			behind := p.Position + direction*8
			if !b.Tile(destination).Occupied() && !b.Tile(behind).Occupied() {
				moves = append(moves, NewJumpMove(b, p, destination))
			}

		case 7:
			if (EighthColumn[p.Position] && p.Alliance == White) ||
				(FirstColumn[p.Position] && p.Alliance == Black) {
				continue
			}
			if tile := b.Tile(destination); tile.Occupied() {
				if tile.Piece.Alliance != p.Alliance {
					moves = append(moves, pawnCaptureMove(b, p, destination, tile.Piece))
				}
			} else if ep := b.EnPassantPawn(); ep != nil {
				if ep.Position == p.Position+p.Alliance.OppositeDirection() && ep.Alliance != p.Alliance {
					moves = append(moves, NewEnPassantMove(b, p, destination, ep))
				}
			}

		case 9:
			if (EighthColumn[p.Position] && p.Alliance == Black) ||
				(FirstColumn[p.Position] && p.Alliance == White) {
				continue
			}
			if tile := b.Tile(destination); tile.Occupied() {
				if tile.Piece.Alliance != p.Alliance {
					moves = append(moves, pawnCaptureMove(b, p, destination, tile.Piece))
				}
			} else if ep := b.EnPassantPawn(); ep != nil {
				if ep.Position == p.Position-p.Alliance.OppositeDirection() && ep.Alliance != p.Alliance {
					moves = append(moves, NewEnPassantMove(b, p, destination, ep))
				}
			}
		}
	}
	return moves
}

func pawnCaptureMove(b *Board, pawn *Piece, destination int, attacked *Piece) *Move {
	m := NewPawnCaptureMove(b, pawn, destination, attacked)
	if pawn.Alliance.IsPawnPromotionSquare(destination) {
		return NewPromotionMove(m)
	}
	return m
}
