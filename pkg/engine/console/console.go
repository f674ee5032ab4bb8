// Package console implements a line-oriented console driver for the engine.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/VietJack/NextMoveGenerator/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver around the engine: one command per
// input line, one response per output line.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string

	depth lang.Optional[int]
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "next", "n":
				// next <fenstring> [depth]

				if len(args) < 6 {
					d.out <- "usage: next <fenstring> [depth]"
					break
				}
				position := strings.Join(args[0:6], " ")

				depth := d.depth
				if len(args) > 6 {
					n, err := strconv.Atoi(args[6])
					if err != nil {
						d.out <- fmt.Sprintf("invalid depth: '%v'", args[6])
						break
					}
					depth = lang.Some(n)
				}

				result, err := d.e.NextMove(ctx, position, depth)
				if err != nil {
					logw.Errorf(ctx, "Next move failed: %v", err)
					d.out <- fmt.Sprintf("error: %v", err)
					break
				}

				data, _ := json.Marshal(result)
				d.out <- string(data)

			case "depth", "d":
				if len(args) > 0 {
					n, err := strconv.Atoi(args[0])
					if err != nil {
						d.out <- fmt.Sprintf("invalid depth: '%v'", args[0])
						break
					}
					d.depth = lang.Some(n)
				}

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				d.out <- fmt.Sprintf("unknown command: '%v'", cmd)
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}
