package portrait

import "errors"

// Configuration errors, all surfaced before any solver call.
var (
	// ErrNoSchedule indicates a record with no time schedule of its own
	// and no batch default to fall back on.
	ErrNoSchedule = errors.New("portrait: initial condition has no time schedule")

	// ErrConfigCount indicates a per-trajectory config list whose length
	// disagrees with the number of initial conditions.
	ErrConfigCount = errors.New("portrait: config list length must match initial conditions")

	// ErrArrowConfig indicates a non-positive arrow span or a negative
	// arrow count.
	ErrArrowConfig = errors.New("portrait: arrow span must be positive and count non-negative")

	// ErrNoField indicates a portrait constructed without a vector field.
	ErrNoField = errors.New("portrait: vector field is required")
)
