// Package dial implements the geometry of a circular analog gauge: a
// graduated scale with major/minor tick marks and numeric labels, plus a
// rotating hand indicating a live value. The package is pure: it turns a
// configuration and a current value into a list of positioned scene
// elements and never touches a rendering surface itself. Hosts (see
// internal/render for the Ebiten one) rasterize the scene however they like.
package dial

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a dial configuration is malformed.
// Wrapped errors carry the offending field; use errors.Is to test.
var ErrInvalidConfig = errors.New("dial: invalid configuration")

// Config describes a dial's value range and angular span. Angles are in
// degrees, measured from east (positive x-axis), increasing clockwise;
// the convention of a y-down drawing surface.
type Config struct {
	Min, Max     float64
	MajorStep    float64
	Subdivisions int
	StartAngle   float64
	EndAngle     float64
}

// DefaultConfig returns the stock 0–100 dial: major ticks every 20 units,
// four subdivisions per interval, sweeping from 7:30 to 4:30 on a clock face.
func DefaultConfig() Config {
	return Config{
		Min:          0,
		Max:          100,
		MajorStep:    20,
		Subdivisions: 4,
		StartAngle:   -225,
		EndAngle:     45,
	}
}

// Validate checks the configuration invariants. It is called by New;
// callers constructing a Config by hand can use it directly.
func (c Config) Validate() error {
	if c.Min >= c.Max {
		return fmt.Errorf("%w: min %v must be less than max %v", ErrInvalidConfig, c.Min, c.Max)
	}
	if c.MajorStep <= 0 {
		return fmt.Errorf("%w: major step %v must be positive", ErrInvalidConfig, c.MajorStep)
	}
	if c.Subdivisions < 0 {
		return fmt.Errorf("%w: subdivisions %d must not be negative", ErrInvalidConfig, c.Subdivisions)
	}
	if c.StartAngle >= c.EndAngle {
		return fmt.Errorf("%w: start angle %v must be less than end angle %v", ErrInvalidConfig, c.StartAngle, c.EndAngle)
	}
	return nil
}

// Dial is an immutable gauge: a validated configuration and its computed
// tick set. Construct one per configuration; a new range needs a new Dial.
type Dial struct {
	config Config
	ticks  TickSet
}

// New validates config and computes the tick set. Fails fast with
// ErrInvalidConfig so a malformed dial can never compose a scene.
func New(config Config) (*Dial, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Dial{
		config: config,
		ticks:  newTickSet(config),
	}, nil
}

// Config returns the dial's configuration.
func (d *Dial) Config() Config { return d.config }

// Ticks returns the dial's computed tick set.
func (d *Dial) Ticks() TickSet { return d.ticks }

// AngleFor maps a value onto the dial face in degrees. Values outside
// [Min, Max] extrapolate past the scale ends on purpose: a source that
// overshoots the advertised range should visibly push the hand past the
// last graduation, not pin it there.
func (d *Dial) AngleFor(value float64) float64 {
	return angleFor(value, d.config.Min, d.config.Max, d.config.StartAngle, d.config.EndAngle)
}
