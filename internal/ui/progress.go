package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress counts completed writes with a [n/total] prefix. Safe for
// concurrent use.
type Progress struct {
	out       io.Writer
	total     int
	completed atomic.Int32
	mu        sync.Mutex
}

// NewProgress creates a progress tracker for n tasks.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one task as completed and prints it.
func (p *Progress) Done(label string) {
	n := int(p.completed.Add(1))
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", n, p.total, label)
}
