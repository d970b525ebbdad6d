package fling

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewDebugLogger returns a logger that prints controller transitions to w.
func NewDebugLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "fling",
	})
}

// SetLogger enables transition logging at debug level. Pass nil to disable.
func (c *Controller) SetLogger(l *log.Logger) {
	c.logger = l
}

// debug logs a transition with the state the controller is in afterwards.
// No-op without a logger.
func (c *Controller) debug(msg string, keyvals ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, append(keyvals, "state", c.state)...)
}
