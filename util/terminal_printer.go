package util

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gosuri/uilive"
)

// TerminalPrinter multiplexes several live status lines onto the
// terminal, refreshing them on a fixed cadence. Each training run owns
// one Output and updates it from its progress callback.
type TerminalPrinter struct {
	outputs   []*Output
	frequency time.Duration
	doneCh    chan struct{}

	writer  *uilive.Writer
	writers []io.Writer
}

func NewTerminalPrinter(frequency time.Duration) *TerminalPrinter {
	return &TerminalPrinter{
		outputs:   make([]*Output, 0),
		frequency: frequency,
		doneCh:    make(chan struct{}),

		writer:  uilive.New(),
		writers: make([]io.Writer, 0),
	}
}

// NewOutput allocates the next status line.
func (t *TerminalPrinter) NewOutput() *Output {
	out := NewOutput()
	t.outputs = append(t.outputs, out)
	t.writers = append(t.writers, t.writer.Newline())
	return out
}

func (t *TerminalPrinter) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-t.doneCh:
				t.print()
				t.writer.Stop()
				return
			case <-ctx.Done():
				t.writer.Stop()
				return
			case <-time.After(t.frequency):
				t.print()
			}
		}
	}()
}

func (t *TerminalPrinter) Stop() {
	close(t.doneCh)
}

func (t *TerminalPrinter) print() {
	for i, output := range t.outputs {
		fmt.Fprint(t.writers[i], output.Get()+"\n")
	}
	t.writer.Flush()
}

// Output is a single mutable status line.
type Output struct {
	mu        *sync.Mutex
	printable string
}

func NewOutput() *Output {
	return &Output{
		mu: new(sync.Mutex),
	}
}

// Set replaces the line (blocking).
func (o *Output) Set(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.printable = s
}

// TrySet replaces the line unless the printer currently holds it.
func (o *Output) TrySet(s string) bool {
	if !o.mu.TryLock() {
		return false
	}
	defer o.mu.Unlock()
	o.printable = s
	return true
}

// Get reads the line (blocking).
func (o *Output) Get() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.printable
}
