// Package coords reads right ascension and declination written in the usual
// hand-typed notations and renders decimal degrees back into them.
package coords

import (
	"math"

	"github.com/soniakeys/unit"
)

const (
	// DegToHour converts degrees of right ascension to hours.
	DegToHour = 24.0 / 360.0
	// HourToDeg converts hours of right ascension to degrees.
	HourToDeg = 360.0 / 24.0

	// Tiny is the tolerance used by ProtectInt and ProtectZero.
	Tiny = 1.0e-8
)

// Unit is the whole-part unit of a Sexagesimal value.
type Unit int

const (
	Degrees Unit = iota
	Hours
)

// Sexagesimal is a value split into whole units, minutes and seconds.
// Minutes and seconds are never negative; the sign lives in Negative.
type Sexagesimal struct {
	Negative bool
	Whole    int
	Min      int
	Sec      float64
	Unit     Unit
}

// ProtectInt floors x unless x is within Tiny of the next integer, in which
// case it rounds up. 23.999999999 becomes 24, not 23.
func ProtectInt(x float64) int {
	if 1.0-(x-math.Floor(x)) < Tiny {
		return int(x + Tiny)
	}
	return int(x)
}

// ProtectZero forces values within Tiny of zero to exactly zero.
func ProtectZero(x float64) float64 {
	if math.Abs(x) < Tiny {
		return 0.0
	}
	return x
}

// Truncate drops everything past the nth decimal place. The floor is
// guarded like ProtectInt so that 4.35 does not come out as 4.349.
func Truncate(x float64, n int) float64 {
	p := math.Pow(10, float64(n))
	// Past 2^53 every float is a whole number and int() would overflow.
	if math.Abs(x*p) >= 1<<53 {
		return x
	}
	if x < 0 {
		return math.Floor(x*p) / p
	}
	return float64(ProtectInt(x*p)) / p
}

// ToSexagesimal splits deg into whole/minutes/seconds. With Hours the value
// is first converted from degrees to hours.
func ToSexagesimal(deg float64, u Unit) Sexagesimal {
	v := deg
	if u == Hours {
		v = deg * DegToHour
	}

	s := Sexagesimal{Unit: u}
	if v < 0 {
		s.Negative = true
		v = math.Abs(v)
	}

	s.Whole = ProtectInt(v)
	s.Min = ProtectInt((v - float64(s.Whole)) * 60.0)
	s.Sec = ProtectZero((v - float64(s.Whole) - float64(s.Min)/60.0) * 3600.0)

	// A guarded round up leaves a tiny negative remainder.
	if s.Sec < 0 {
		s.Sec = 0
	}
	if s.Min < 0 {
		s.Min = 0
	}

	return s
}

// Decimal rebuilds the value in its own unit.
func (s Sexagesimal) Decimal() float64 {
	v := float64(s.Whole) + float64(s.Min)/60.0 + s.Sec/3600.0
	if s.Negative {
		return -v
	}
	return v
}

// Degrees rebuilds the value in degrees.
func (s Sexagesimal) Degrees() float64 {
	if s.Unit == Hours {
		return s.Decimal() * HourToDeg
	}
	return s.Decimal()
}

// Round rounds the seconds to the given number of places and carries a
// full minute or unit upward, so 59.9996s never prints as 60.000.
func (s Sexagesimal) Round(places int) Sexagesimal {
	p := math.Pow(10, float64(places))
	s.Sec = math.Round(s.Sec*p) / p

	if s.Sec >= 60 {
		s.Sec -= 60
		s.Min++
	}
	if s.Min >= 60 {
		s.Min -= 60
		s.Whole++
	}

	return s
}

// Sign returns '-' for negative values and '+' otherwise.
func (s Sexagesimal) Sign() byte {
	if s.Negative {
		return '-'
	}
	return '+'
}

// RA returns deg as a github.com/soniakeys/unit right ascension.
func RA(deg float64) unit.RA {
	return unit.RA(unit.AngleFromDeg(deg))
}

// Dec returns deg as a github.com/soniakeys/unit angle.
func Dec(deg float64) unit.Angle {
	return unit.AngleFromDeg(deg)
}
