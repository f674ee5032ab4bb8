package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/seekerror/logw"
)

// ReadInputLines reads lines from the reader into a chan. Async.
func ReadInputLines(ctx context.Context, r io.Reader) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteOutputLines writes lines from the given chan to the writer.
func WriteOutputLines(ctx context.Context, w io.Writer, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(w, line)
	}
}
