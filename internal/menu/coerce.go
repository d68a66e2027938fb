package menu

import (
	"math"
	"strconv"
	"strings"
)

// Loosely typed JSON (bundled snapshots, cached rows) is coerced field by
// field with the usual JavaScript conversions, since those files are edited
// by hand or written by older clients.

func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func coerceNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}

// coerceSortOrder truncates n, using fallback when n is not a usable int
func coerceSortOrder(n float64, fallback int) int {
	if !finite(n) || math.Abs(n) > math.MaxInt32 {
		return fallback
	}
	return int(n)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
