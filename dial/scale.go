package dial

// stepEpsilon absorbs accumulated floating-point error when deciding
// whether a stride landed on the range maximum.
const stepEpsilon = 1e-9

// TickSet holds the graduation values of a dial, computed once at
// construction from the configuration.
type TickSet struct {
	Major []float64
	Minor []float64
}

// newTickSet strides major ticks from Min by MajorStep while they stay
// within Max; if the range is not an even multiple of the step, the scale
// simply stops short of Max (truncate, no clamp). Each major interval
// except the one after the last tick is split into Subdivisions equal
// parts, and the interior split points become minor ticks, so
// Subdivisions of 0 or 1 produce none, and 5 produce four marks.
func newTickSet(c Config) TickSet {
	var ts TickSet

	span := c.Max - c.Min
	for i := 0; ; i++ {
		v := c.Min + float64(i)*c.MajorStep
		if v-c.Min > span+stepEpsilon*c.MajorStep {
			break
		}
		ts.Major = append(ts.Major, v)
	}

	if c.Subdivisions < 2 {
		return ts
	}
	spacing := c.MajorStep / float64(c.Subdivisions)
	for i := 0; i < len(ts.Major)-1; i++ {
		for k := 1; k < c.Subdivisions; k++ {
			ts.Minor = append(ts.Minor, ts.Major[i]+float64(k)*spacing)
		}
	}
	return ts
}

// NewTickSet computes the tick values for the given range without
// constructing a full Dial. It performs the same validation as New.
func NewTickSet(min, max, majorStep float64, subdivisions int) (TickSet, error) {
	c := Config{
		Min:          min,
		Max:          max,
		MajorStep:    majorStep,
		Subdivisions: subdivisions,
		StartAngle:   -225,
		EndAngle:     45,
	}
	if err := c.Validate(); err != nil {
		return TickSet{}, err
	}
	return newTickSet(c), nil
}
