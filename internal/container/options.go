// Container options and the state common to both container kinds.

package container

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option configures a container at construction time.
type Option func(*settings)

type settings struct {
	logger           *slog.Logger
	checkCoordinates bool
}

// WithLogger sets the logger used for structural events. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCoordinateChecks makes Compress and Expand reject sources whose
// sites share a coordinate.
func WithCoordinateChecks() Option {
	return func(s *settings) {
		s.checkCoordinates = true
	}
}

// base holds what both container kinds carry besides their storage.
type base struct {
	id               string
	log              *slog.Logger
	checkCoordinates bool
}

func newBase(kind string, opts []Option) base {
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	id := uuid.Must(uuid.NewV7()).String()
	return base{
		id:               id,
		log:              s.logger.With("alignment", id, "kind", kind),
		checkCoordinates: s.checkCoordinates,
	}
}

// ID returns the identifier attached to the container's log records.
func (b *base) ID() string {
	return b.id
}
