package coords

import (
	"errors"
	"fmt"
)

// Kind classifies why a coordinate was rejected.
type Kind int

const (
	// FormatRejected means no input shape matched, a number could not be read,
	// or a colon field count fell outside 1 to 3.
	FormatRejected Kind = iota
	// RangeViolation means a parsed quantity lies outside its valid domain.
	RangeViolation
)

func (k Kind) String() string {
	switch k {
	case FormatRejected:
		return "format rejected"
	case RangeViolation:
		return "range violation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field names the quantity an Error refers to.
type Field string

const (
	FieldInput     Field = "input"
	FieldRA        Field = "ra"
	FieldDec       Field = "dec"
	FieldRAHour    Field = "ra hour"
	FieldRAMinute  Field = "ra minute"
	FieldRASecond  Field = "ra second"
	FieldDecDegree Field = "dec degree"
	FieldDecMinute Field = "dec minute"
	FieldDecSecond Field = "dec second"
)

// Error is the diagnostic attached to a rejected coordinate.
type Error struct {
	Kind  Kind
	Field Field
	Input string

	// Range violations
	Value        float64
	Min, Max     float64
	MaxExclusive bool

	// Colon field count for format rejections, 0 otherwise.
	Count int

	// Reason is set on format rejections.
	Reason string
}

func (e *Error) Error() string {
	if e.Kind == RangeViolation {
		closing := "]"
		if e.MaxExclusive {
			closing = ")"
		}
		return fmt.Sprintf("invalid %s %g: must be within [%g, %g%s", e.Field, e.Value, e.Min, e.Max, closing)
	}
	if e.Count > 0 {
		return fmt.Sprintf("invalid %s %q: %d colon separated fields, want 1 to 3", e.Field, e.Input, e.Count)
	}
	if e.Reason != "" {
		return fmt.Sprintf("unrecognized %s %q: %s", e.Field, e.Input, e.Reason)
	}
	return fmt.Sprintf("unrecognized %s %q", e.Field, e.Input)
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

func rejectFormat(input string, field Field, reason string) *Error {
	return &Error{Kind: FormatRejected, Field: field, Input: input, Reason: reason}
}

func rejectFieldCount(token string, field Field, n int) *Error {
	return &Error{Kind: FormatRejected, Field: field, Input: token, Count: n}
}

// checkRange returns a RangeViolation unless min <= v <= max (or v < max when
// exclusive). NaN never passes.
func checkRange(field Field, v, min, max float64, exclusive bool) *Error {
	ok := v >= min && v <= max
	if exclusive {
		ok = v >= min && v < max
	}
	if ok {
		return nil
	}
	return &Error{Kind: RangeViolation, Field: field, Value: v, Min: min, Max: max, MaxExclusive: exclusive}
}
