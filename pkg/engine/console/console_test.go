package console_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/VietJack/NextMoveGenerator/pkg/board/fen"
	"github.com/VietJack/NextMoveGenerator/pkg/engine"
	"github.com/VietJack/NextMoveGenerator/pkg/engine/console"
	"github.com/VietJack/NextMoveGenerator/pkg/eval"
	"github.com/VietJack/NextMoveGenerator/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "nextmove", "test", search.MiniMax{Eval: eval.Weighted{}})

	in := make(chan string, 3)
	driver, out := console.NewDriver(ctx, e, in)

	banner := <-out
	assert.True(t, strings.HasPrefix(banner, "engine "), banner)

	in <- "next " + fen.Initial + " 1"
	line := <-out

	var result engine.Result
	require.NoError(t, json.Unmarshal([]byte(line), &result))
	assert.Equal(t, "white", result.Player)
	assert.Equal(t, 1, result.Depth)

	in <- "next garbage"
	assert.Contains(t, <-out, "usage:")

	in <- "quit"
	select {
	case <-driver.Closed():
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not close")
	}
}

func TestDriverDefaultDepthCommand(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "nextmove", "test", search.MiniMax{Eval: eval.Weighted{}})

	in := make(chan string, 3)
	driver, out := console.NewDriver(ctx, e, in)
	<-out // banner

	in <- "depth 1"
	in <- "next " + fen.Initial

	var result engine.Result
	require.NoError(t, json.Unmarshal([]byte(<-out), &result))
	assert.Equal(t, 1, result.Depth)

	close(in)
	select {
	case <-driver.Closed():
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not close")
	}
}
