package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/VietJack/NextMoveGenerator/pkg/engine"
	"github.com/VietJack/NextMoveGenerator/pkg/engine/console"
	"github.com/VietJack/NextMoveGenerator/pkg/eval"
	"github.com/VietJack/NextMoveGenerator/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var (
	position = flag.String("fen", "", "Position in FEN notation for a one-shot move query")
	depth    = flag.Int("depth", engine.DefaultDepth, "Search depth limit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: nextmove [options]

NEXTMOVE computes the best move for a chess position. It answers a single
position given with -fen, or runs a console loop over stdin.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "nextmove", "vietjack", search.MiniMax{Eval: eval.Weighted{}})

	if *position != "" {
		result, err := e.NextMove(ctx, *position, lang.Some(*depth))
		if err != nil {
			logw.Exitf(ctx, "Next move failed: %v", err)
		}

		data, _ := json.Marshal(result)
		fmt.Fprintln(os.Stdout, string(data))
		return
	}

	in := engine.ReadInputLines(ctx, os.Stdin)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteOutputLines(ctx, os.Stdout, out)

	<-driver.Closed()
}
