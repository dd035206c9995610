package utils // package utils provides helpers shared across handlers

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CleanString normalizes a user-submitted text field.  A value that is
// empty or whitespace-only after trimming is treated as absent and mapped
// to nil so it is persisted as SQL NULL.  Anything else is returned
// verbatim (not trimmed: trailing spaces inside a populated value are the
// caller's own data).
func CleanString(val string) *string {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	return &val
}

// CleanNumber coerces a user-submitted numeric field to a float64,
// defaulting to 0 for anything missing or unparsable.  Clients send
// numbers both as JSON numbers and as numeric strings, so the input is
// typed any.  Note the contract: an invalid value and a legitimate zero
// are indistinguishable after coercion, so "must be nonzero" checks have
// to run on the result, never on the raw input.
func CleanNumber(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

// ParseNumber is the strict variant of CleanNumber: it reports whether the
// value actually parsed instead of folding failures into zero.  Used where
// the API contract is "must be a number" rather than "default to zero".
func ParseNumber(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}
