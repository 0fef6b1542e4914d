package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"taxcalc/internal/domain"
)

type line struct {
	text string
	err  error
}

// Input reads replies line by line from r, writing prompts to w.
type Input struct {
	r         io.Reader
	w         io.Writer
	once      sync.Once
	closeOnce sync.Once
	rows      chan line
	done      chan struct{}
}

// NewInput returns an Input reading from r and prompting on w.
func NewInput(r io.Reader, w io.Writer) *Input {
	return &Input{r: r, w: w, rows: make(chan line, 1), done: make(chan struct{})}
}

// Close releases the background reader once it has a line to hand over.
// Prompt reports io.EOF after Close.
func (in *Input) Close() error {
	in.closeOnce.Do(func() { close(in.done) })
	return nil
}

// Prompt writes text and waits for the next line. The reply is trimmed of
// surrounding whitespace. A final line without a newline is still returned;
// after that Prompt reports io.EOF.
func (in *Input) Prompt(ctx context.Context, text string) (string, error) {
	in.once.Do(in.start)
	select {
	case <-in.done:
		return "", io.EOF
	default:
	}

	if _, err := fmt.Fprint(in.w, text); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-in.done:
		return "", io.EOF
	case l, ok := <-in.rows:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// start reads lines in the background so Prompt can give up on ctx while a
// read is still blocked.
func (in *Input) start() {
	go func() {
		defer close(in.rows)
		sc := bufio.NewScanner(in.r)
		for sc.Scan() {
			if !in.send(line{text: sc.Text()}) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			in.send(line{err: err})
		}
	}()
}

func (in *Input) send(l line) bool {
	select {
	case in.rows <- l:
		return true
	case <-in.done:
		return false
	}
}

// Compile-time assertion that Input implements domain.InputProvider.
var _ domain.InputProvider = (*Input)(nil)
