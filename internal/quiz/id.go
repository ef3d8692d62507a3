package quiz

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ValidateID turns a user-supplied identifier into a quiz id.
//
// A nil raw value means the parameter was not given. Strings are parsed
// by their leading integer portion, so "12abc" is 12 and "3.9" is 3.
// Integer kinds pass through and floats are truncated.
func ValidateID(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, ErrMissingParameter
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float32:
		return truncate(float64(v))
	case float64:
		return truncate(v)
	case string:
		return parseLeadingInt(v)
	case *string:
		if v == nil {
			return 0, ErrMissingParameter
		}
		return parseLeadingInt(*v)
	default:
		return 0, ErrNotANumber
	}
}

func truncate(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	return int(f), nil
}

func parseLeadingInt(s string) (int, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, ErrNotANumber
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}
