package signals

import (
	"log/slog"

	"github.com/google/uuid"
)

type config struct {
	name      string
	logger    *slog.Logger
	ungrouped UngroupedPlacement
}

// Option configures a Signal.
type Option func(*config)

// WithName sets the name used in log records. Defaults to a UUIDv7.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger for connection bookkeeping. Emission itself never
// logs. Defaults to discarding everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func WithUngroupedPlacement(p UngroupedPlacement) Option {
	return func(c *config) {
		c.ungrouped = p
	}
}

func newConfig(opts []Option) config {
	c := config{ungrouped: UngroupedByPosition}
	for _, opt := range opts {
		opt(&c)
	}
	if c.name == "" {
		c.name = uuid.Must(uuid.NewV7()).String()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}
