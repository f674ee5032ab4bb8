// Package eval contains position evaluation logic.
package eval

import (
	"context"

	"github.com/VietJack/NextMoveGenerator/pkg/board"
)

// Score is a signed position score in centipawns. Positive favors White.
type Score int

// Evaluator is a static position evaluator. The search depth at the point of
// evaluation scales terminal bonuses so that nearer mates score higher.
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board, depth int) Score
}

// Evaluation weights.
const (
	CheckBonus     Score = 50
	CheckmateBonus Score = 10000
	DepthBonus     Score = 100
	CastleBonus    Score = 60
	MobilityBonus  Score = 100
)

// Weighted scores a board as the difference of the per-player sums of
// material, mobility, check, checkmate and castle terms.
type Weighted struct{}

func (e Weighted) Evaluate(ctx context.Context, b *board.Board, depth int) Score {
	return e.scorePlayer(b.WhitePlayer(), depth) - e.scorePlayer(b.BlackPlayer(), depth)
}

func (e Weighted) scorePlayer(p *board.Player, depth int) Score {
	return material(p) + mobility(p) + check(p) + checkmate(p, depth) + castle(p)
}

func material(p *board.Player) Score {
	var total Score
	for _, piece := range p.ActivePieces() {
		total += Score(piece.Value())
	}
	return total
}

func mobility(p *board.Player) Score {
	return Score(len(p.LegalMoves())) * MobilityBonus
}

func check(p *board.Player) Score {
	if p.Opponent().IsInCheck() {
		return CheckBonus
	}
	return 0
}

func checkmate(p *board.Player, depth int) Score {
	if p.Opponent().IsInCheckmate() {
		return CheckmateBonus * depthBonus(depth)
	}
	return 0
}

func depthBonus(depth int) Score {
	if depth == 0 {
		return 1
	}
	return DepthBonus * Score(depth)
}

func castle(p *board.Player) Score {
	if p.IsCastled() {
		return CastleBonus
	}
	return 0
}
