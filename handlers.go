package fallible

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// LogHandler returns a Handler that logs each failure at warn level.
func LogHandler(logger *slog.Logger, msg string, attrs ...slog.Attr) Handler {
	return func(err error) {
		all := make([]slog.Attr, 0, len(attrs)+1)
		all = append(all, attrs...)
		all = append(all, slog.String("error", err.Error()))
		logger.LogAttrs(context.Background(), slog.LevelWarn, msg, all...)
	}
}

// Collector accumulates the failures it is handed. It is safe for concurrent
// use, so one Collector can observe several pipelines at once.
type Collector struct {
	mu   sync.Mutex
	errs []error
}

// Handler returns a Handler that records failures into c.
func (c *Collector) Handler() Handler {
	return c.Add
}

// Add records err.
func (c *Collector) Add(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

// Errors returns a copy of the recorded failures, oldest first.
func (c *Collector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make([]error, len(c.errs))
	copy(res, c.errs)
	return res
}

// Len returns the number of recorded failures.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs)
}

// Err joins the recorded failures, or returns nil when there are none.
func (c *Collector) Err() error {
	return errors.Join(c.Errors()...)
}
