package service

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	esNumber        = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})*(,\d+)?$`)
	enNumber        = regexp.MustCompile(`^-?\d{1,3}(,\d{3})*(\.\d+)?$`)
	numericFragment = regexp.MustCompile(`-?\d[\d.,]*`)
	nonDigit        = regexp.MustCompile(`\D`)
)

// toFloat coerces the loosely typed amounts that arrive inside datos_crudos:
// plain numbers, "1234.56", "1,234.56", "1.234,56", or strings carrying "$",
// "%", whitespace and surrounding text. Anything unparseable yields 0.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return sanitize(n)
	case float32:
		return sanitize(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		return parseAmount(n.String())
	case string:
		return parseAmount(n)
	default:
		return parseAmount(fmt.Sprint(n))
	}
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// strip common symbols
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.TrimSpace(s)

	// "1.234.567,89" (ES)
	if esNumber.MatchString(s) {
		t := strings.ReplaceAll(s, ".", "")
		t = strings.ReplaceAll(t, ",", ".")
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
		return 0
	}

	// "1,234,567.89" (EN)
	if enNumber.MatchString(s) {
		t := strings.ReplaceAll(s, ",", "")
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
		return 0
	}

	// fallback: treat a lone comma as the decimal separator
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return f
	}

	if m := numericFragment.FindString(s); m != "" {
		return parseFragment(m)
	}
	return 0
}

// parseFragment handles a numeric fragment lifted out of surrounding text,
// which may still mix thousands separators and a decimal separator.
func parseFragment(fragment string) float64 {
	candidate := strings.TrimRight(fragment, ".,")

	hasDot := strings.Contains(candidate, ".")
	hasComma := strings.Contains(candidate, ",")
	if hasDot && hasComma {
		if strings.LastIndex(candidate, ",") > strings.LastIndex(candidate, ".") {
			candidate = strings.ReplaceAll(candidate, ".", "")
			candidate = strings.ReplaceAll(candidate, ",", ".")
		} else {
			candidate = strings.ReplaceAll(candidate, ",", "")
		}
	} else {
		candidate = strings.ReplaceAll(candidate, ",", ".")
	}

	if strings.Count(candidate, ".") > 1 {
		// keep the last dot as the decimal point, drop earlier separators
		parts := strings.Split(candidate, ".")
		decimalPart := parts[len(parts)-1]
		head := strings.Join(parts[:len(parts)-1], "")

		sign := ""
		if strings.HasPrefix(head, "-") {
			sign = "-"
		}
		headDigits := nonDigit.ReplaceAllString(strings.TrimPrefix(head, "-"), "")
		if headDigits == "" {
			headDigits = "0"
		}
		candidate = sign + headDigits + "." + decimalPart
	}

	f, err := strconv.ParseFloat(candidate, 64)
	if err != nil {
		return 0
	}
	return f
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
