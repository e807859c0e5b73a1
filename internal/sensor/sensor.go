// Package sensor provides the value sources the demo feeds into the dial:
// a simulated random walk and the host machine's CPU load.
package sensor

import (
	"errors"
	"math/rand"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Source produces the dial's current value in dial units. The demo loop
// polls it on a fixed cadence; the dial animates between readings.
type Source interface {
	Read() (float64, error)
}

// Simulated is a bounded random walk with a mean-reverting bias: the
// further the value drifts from the middle of the range, the harder the
// next delta pulls it back, so the hand keeps moving without pinning
// itself to either end of the scale.
type Simulated struct {
	min, max float64
	value    float64
	rng      *rand.Rand
}

// NewSimulated starts a walk at the middle of [min, max].
func NewSimulated(min, max float64, seed int64) *Simulated {
	return &Simulated{
		min:   min,
		max:   max,
		value: min + (max-min)/2,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (s *Simulated) Read() (float64, error) {
	span := s.max - s.min
	maxDelta := span / 12

	mid := s.min + span/2
	bias := (mid - s.value) / (span / 2) * maxDelta / 2
	delta := bias + (s.rng.Float64()*2-1)*maxDelta

	s.value = clamp(s.value+delta, s.min, s.max)
	return s.value, nil
}

// CPU maps the machine's overall CPU utilization onto the dial range.
// Readings are exponentially smoothed so a single busy tick doesn't slam
// the hand across the face.
type CPU struct {
	min, max  float64
	smoothing float64
	value     float64
	primed    bool
}

func NewCPU(min, max, smoothing float64) *CPU {
	return &CPU{min: min, max: max, smoothing: smoothing}
}

func (c *CPU) Read() (float64, error) {
	// Interval 0 measures since the previous call, which matches the
	// demo's polling cadence without blocking the frame.
	percents, err := cpu.Percent(0, false)
	if err != nil {
		return c.value, err
	}
	if len(percents) == 0 {
		return c.value, errors.New("sensor: no cpu utilization reported")
	}

	return c.observe(c.min + percents[0]/100*(c.max-c.min)), nil
}

// observe folds a raw reading into the smoothed value. The first reading
// primes the filter directly so the hand doesn't sweep up from zero.
func (c *CPU) observe(v float64) float64 {
	if !c.primed {
		c.value = v
		c.primed = true
		return c.value
	}
	c.value = c.smoothing*c.value + (1-c.smoothing)*v
	return c.value
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
