/*
PURPOSE:
  Parse-or-absent handling for the loosely typed rating fields in the
  Supabase payload.

REQUIREMENTS:
  User-specified:
  - A rating counts only when it is non-null, non-empty, and parses as
    a non-zero integer. Zero is indistinguishable from "not rated" in
    the evaluation app, so it is treated as absent.

  Implementation-discovered:
  - JSON numbers decode to float64; the app sometimes stores ratings as
    strings, so both must be accepted.
  - Anything else (bool, object, array, non-integer string) is a
    malformed record and aborts the analysis.

ARCHITECTURE INTEGRATION:
  - Used by: form1.go, form2.go, form3.go

ERROR HANDLING:
  - Returns an explicit error for unparseable values; callers wrap it
    with the offending user id.

USAGE:
  n, ok, err := analyze.ParseRating(answer.Hardness)

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update if the app ever introduces zero-based rating scales.
*/

package analyze

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseRating extracts an integer rating from a loosely typed value.
// ok is false when the value is absent (nil, empty string, or zero).
// Fractional numbers are truncated toward zero.
func ParseRating(v any) (int, bool, error) {
	switch t := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		n := int(t)
		if n == 0 {
			return 0, false, nil
		}
		return n, true, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false, fmt.Errorf("rating %q is not an integer", t)
		}
		if n == 0 {
			return 0, false, nil
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("rating has unsupported type %T", v)
	}
}

// hardnessKey renders the system-assigned hardness level as a string
// key for bucket lookup. Values that are not a plain integer or string
// come back as-is and simply fail the level check downstream.
func hardnessKey(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.Itoa(int(t))
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
