package ui

import (
	"fmt"
	"io"
	"sync"
)

// Progress reports completion of a sequence of tasks with a [n/total] counter.
type Progress struct {
	out       io.Writer
	total     int
	completed int
	mu        sync.Mutex
}

// NewProgress creates a progress tracker for n tasks.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one task as completed and prints the current progress.
func (p *Progress) Done(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.completed, p.total, label)
}

// Warn marks one task as completed with a warning.
func (p *Progress) Warn(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] Warning: %s\n", p.completed, p.total, fmt.Sprintf(format, args...))
}

// Log prints an informational message without advancing the counter.
func (p *Progress) Log(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
