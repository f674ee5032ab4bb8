// Package engine exposes the next-move computation behind a small facade:
// FEN in, chosen move and successor FEN out.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/VietJack/NextMoveGenerator/pkg/board"
	"github.com/VietJack/NextMoveGenerator/pkg/board/fen"
	"github.com/VietJack/NextMoveGenerator/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(1, 0, 0)

// DefaultDepth is the search depth used when a request does not specify one.
const DefaultDepth = 3

// Options are engine creation options.
type Options struct {
	// Depth is the default search depth, used unless a request overrides it.
	Depth uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v}", o.Depth)
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// Result describes the move chosen for a position.
type Result struct {
	// MovedPiece is the FEN letter of the moved piece; case indicates color.
	MovedPiece string `json:"moved_piece"`
	// From and To are algebraic squares.
	From string `json:"from"`
	To   string `json:"to"`
	// FEN is the position after the chosen move.
	FEN string `json:"fen_board"`
	// Player is the alliance that just moved, "white" or "black".
	Player string `json:"player"`
	// Depth echoes the search depth used.
	Depth int `json:"depth"`
}

// Engine encapsulates move selection: FEN validation, search and move
// application. Every request is a pure function of its position; the engine
// keeps no game state.
type Engine struct {
	name, author string

	root search.Search
	opts Options
	mu   sync.Mutex
}

func New(ctx context.Context, name, author string, root search.Search, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		root:   root,
		opts:   Options{Depth: DefaultDepth},
	}
	for _, fn := range opts {
		fn(e)
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

// NextMove validates and decodes the position, searches it to the given depth
// (or the engine default) and returns the chosen move along with the
// resulting position. Positions with no playable move return an error.
func (e *Engine) NextMove(ctx context.Context, position string, depth lang.Optional[int]) (Result, error) {
	if err := fen.Validate(position); err != nil {
		return Result{}, err
	}
	b, err := fen.Decode(position)
	if err != nil {
		return Result{}, err
	}

	d := int(e.Options().Depth)
	if v, ok := depth.V(); ok {
		d = v
	}

	player := b.CurrentPlayer()
	logw.Infof(ctx, "Next move for %v (%v), depth=%v", position, player, d)

	move, err := e.root.Execute(ctx, b, d)
	if err != nil {
		return Result{}, err
	}

	if transition := b.CurrentPlayer().MakeMove(move); transition.Status.IsDone() {
		b = transition.Board
	}

	result := Result{
		MovedPiece: move.Piece.String(),
		From:       board.PositionAt(move.Origin()),
		To:         board.PositionAt(move.Destination),
		FEN:        fen.Encode(b),
		Player:     player.String(),
		Depth:      d,
	}
	logw.Infof(ctx, "Move %v%v: %v", result.From, result.To, result.FEN)
	return result, nil
}
