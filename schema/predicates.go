package schema

import (
	"regexp"
	"time"
)

// Predicates for common parameter kinds. Each returns a plain func(any) bool
// suitable for Param.Check, so component schemas read declaratively and
// custom predicates compose with the stock ones through And, Or and Not.

// IsString accepts string values.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// NonEmptyString accepts strings with at least one character.
func NonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

// IsBool accepts bool values.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsInt accepts values of any signed or unsigned integer type.
func IsInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// IsNumber accepts integer and floating-point values.
func IsNumber(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return IsInt(v)
	}
}

// IsTime accepts time.Time values.
func IsTime(v any) bool {
	_, ok := v.(time.Time)
	return ok
}

// IsDuration accepts time.Duration values.
func IsDuration(v any) bool {
	_, ok := v.(time.Duration)
	return ok
}

// OneOf accepts a string value equal to one of the allowed choices.
func OneOf(allowed ...string) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		for _, choice := range allowed {
			if s == choice {
				return true
			}
		}
		return false
	}
}

// Matches accepts a string value matching the compiled pattern.
func Matches(re *regexp.Regexp) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}

// MinLen accepts a string value of at least n bytes.
func MinLen(n int) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) >= n
	}
}

// MaxLen accepts a string value of at most n bytes.
func MaxLen(n int) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) <= n
	}
}

// IntBetween accepts an integer value in the inclusive range [min, max].
func IntBetween(min, max int) func(any) bool {
	return func(v any) bool {
		n, ok := asInt64(v)
		return ok && n >= int64(min) && n <= int64(max)
	}
}

// And accepts values passing every given predicate.
func And(checks ...func(any) bool) func(any) bool {
	return func(v any) bool {
		for _, check := range checks {
			if !check(v) {
				return false
			}
		}
		return true
	}
}

// Or accepts values passing at least one of the given predicates.
func Or(checks ...func(any) bool) func(any) bool {
	return func(v any) bool {
		for _, check := range checks {
			if check(v) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(check func(any) bool) func(any) bool {
	return func(v any) bool {
		return !check(v)
	}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > 1<<62 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
