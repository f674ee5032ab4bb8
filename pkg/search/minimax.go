// Package search contains the adversarial search over board positions.
package search

import (
	"context"
	"errors"

	"github.com/VietJack/NextMoveGenerator/pkg/board"
	"github.com/VietJack/NextMoveGenerator/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ErrHalted is returned if a search is cancelled before completion.
var ErrHalted = errors.New("search halted")

// ErrNoMove is returned if the side to move has no playable move, i.e., the
// position is checkmate or stalemate.
var ErrNoMove = errors.New("no legal move")

// window is the initial alpha-beta window. It exceeds the largest achievable
// evaluation, checkmate bonus at full depth included.
const window eval.Score = 50000000

// Search selects a move for the side to move on the given board.
type Search interface {
	Execute(ctx context.Context, b *board.Board, depth int) (*board.Move, error)
}

// MiniMax implements fixed-depth minimax with alpha-beta pruning. White is
// the maximizing player and Black the minimizing player. Pseudo-code:
//
//	function alphabeta(node, depth, α, β, maximizingPlayer) is
//	    if depth = 0 or node is a terminal node then
//	        return the heuristic value of node
//	    if maximizingPlayer then
//	        value := −∞
//	        for each child of node do
//	            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	            α := max(α, value)
//	            if α ≥ β then
//	                break (* β cutoff *)
//	        return value
//	    else
//	        value := +∞
//	        for each child of node do
//	            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	            β := min(β, value)
//	            if β ≤ α then
//	                break (* α cutoff *)
//	        return value
//
// See: https://en.wikipedia.org/wiki/Alpha–beta_pruning.
type MiniMax struct {
	Eval eval.Evaluator
}

// Execute returns the best move for the side to move, examining moves in
// generation order and keeping the first strict extremum. Deterministic for a
// given (board, depth).
func (m MiniMax) Execute(ctx context.Context, b *board.Board, depth int) (*board.Move, error) {
	run := &runMiniMax{eval: m.Eval}

	var best *board.Move
	highest, lowest := -window, window

	player := b.CurrentPlayer()
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}

		if player.Alliance() == board.White {
			value := run.min(ctx, transition.Board, depth-1, -window, window)
			if value > highest {
				highest = value
				best = move
			}
		} else {
			value := run.max(ctx, transition.Board, depth-1, -window, window)
			if value < lowest {
				lowest = value
				best = move
			}
		}
	}

	if contextx.IsCancelled(ctx) {
		return nil, ErrHalted
	}
	if best == nil {
		return nil, ErrNoMove
	}
	return best, nil
}

type runMiniMax struct {
	eval  eval.Evaluator
	nodes uint64
}

func (r *runMiniMax) min(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score) eval.Score {
	r.nodes++
	if contextx.IsCancelled(ctx) {
		return 0
	}
	if depth <= 0 || b.CurrentPlayer().IsInCheckmate() || b.CurrentPlayer().IsInStalemate() {
		return r.eval.Evaluate(ctx, b, depth)
	}

	lowest := window
	player := b.CurrentPlayer()
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}

		value := r.max(ctx, transition.Board, depth-1, alpha, beta)
		if value < lowest {
			lowest = value
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			break // α cutoff
		}
	}
	return lowest
}

func (r *runMiniMax) max(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score) eval.Score {
	r.nodes++
	if contextx.IsCancelled(ctx) {
		return 0
	}
	if depth <= 0 || b.CurrentPlayer().IsInCheckmate() || b.CurrentPlayer().IsInStalemate() {
		return r.eval.Evaluate(ctx, b, depth)
	}

	highest := -window
	player := b.CurrentPlayer()
	for _, move := range player.LegalMoves() {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}

		value := r.min(ctx, transition.Board, depth-1, alpha, beta)
		if value > highest {
			highest = value
		}
		if value > alpha {
			alpha = value
		}
		if beta <= alpha {
			break // β cutoff
		}
	}
	return highest
}
