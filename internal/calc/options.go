package calc

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"
)

// NowFunc returns the current time
type NowFunc func() time.Time

// IDFunc returns a new unique history entry ID
type IDFunc func() string

// Option configures a Calculator
type Option func(*Calculator)

// WithLocale sets the locale used to group digits on the display.
func WithLocale(locale language.Tag) Option {
	return func(c *Calculator) {
		c.format = NewFormatter(locale)
	}
}

// WithNowFunc sets the clock used to timestamp history entries.
// This is primarily useful for testing with deterministic timestamps.
func WithNowFunc(nowFunc NowFunc) Option {
	return func(c *Calculator) {
		c.nowFunc = nowFunc
	}
}

// WithIDFunc sets the generator for history entry IDs.
func WithIDFunc(idFunc IDFunc) Option {
	return func(c *Calculator) {
		c.idFunc = idFunc
	}
}

// WithHistoryCapacity overrides the number of history entries kept.
func WithHistoryCapacity(capacity int) Option {
	return func(c *Calculator) {
		c.history = NewHistory(capacity)
	}
}

// WithLogger sets the logger used to trace state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}
