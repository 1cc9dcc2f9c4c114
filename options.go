package accordion

import (
	"log/slog"
	"time"

	"github.com/3-lines-studio/accordion/internal/clock"
	"github.com/3-lines-studio/accordion/internal/logging"
	"github.com/3-lines-studio/accordion/internal/measure"
)

type Option func(*settings)

type settings struct {
	measurer   measure.Measurer
	clock      clock.Clock
	transition time.Duration
	logger     *slog.Logger
}

func defaultSettings() settings {
	return settings{
		measurer:   measure.DefaultEstimator(),
		clock:      clock.Real(),
		transition: DefaultTransition,
		logger:     logging.NewNop(),
	}
}

// WithMeasurer replaces the height estimator used when a panel expands.
func WithMeasurer(m measure.Measurer) Option {
	return func(s *settings) {
		if m != nil {
			s.measurer = m
		}
	}
}

// WithFixedHeight makes every panel expand to px.
func WithFixedHeight(px int) Option {
	return WithMeasurer(measure.Fixed(px))
}

func WithClock(c clock.Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithTransition sets how long the transitioning marker stays on an
// opened panel. Zero disables the marker.
func WithTransition(d time.Duration) Option {
	return func(s *settings) {
		s.transition = max(d, 0)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
