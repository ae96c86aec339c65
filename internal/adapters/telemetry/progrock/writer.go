package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// ConsoleWriter renders status updates as plain progress lines.
//
// Each vertex produces one line when it starts and one when it finishes, so
// repeated status flushes for the same vertex do not repeat output.
type ConsoleWriter struct {
	mu       sync.Mutex
	w        io.Writer
	started  map[string]bool
	finished map[string]bool
}

var _ progrock.Writer = (*ConsoleWriter)(nil)

// NewConsoleWriter creates a ConsoleWriter rendering to w.
func NewConsoleWriter(w io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		w:        w,
		started:  make(map[string]bool),
		finished: make(map[string]bool),
	}
}

// WriteStatus renders the vertex transitions and log data carried by update.
func (c *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, v := range update.Vertexes {
		switch {
		case v.Completed == nil && !c.started[v.Id]:
			c.started[v.Id] = true
			_, _ = fmt.Fprintf(c.w, "=> %s\n", v.Name)
		case v.Completed != nil && !c.finished[v.Id]:
			c.finished[v.Id] = true
			if v.Error != nil {
				_, _ = fmt.Fprintf(c.w, "!! %s: %s\n", v.Name, v.GetError())
				continue
			}
			_, _ = fmt.Fprintf(c.w, "ok %s\n", v.Name)
		}
	}

	for _, l := range update.Logs {
		_, _ = c.w.Write(l.Data)
	}

	return nil
}

// Close does nothing; the destination writer is owned by the caller.
func (c *ConsoleWriter) Close() error {
	return nil
}
