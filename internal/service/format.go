package service

import (
	"strconv"
	"strings"
)

// formatMoneyES renders a monetary amount with dots for thousands and a
// comma decimal, always 2 decimals. 1234567.89 -> "1.234.567,89".
func formatMoneyES(value float64) string {
	value = sanitize(value)

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	return sign + b.String() + "," + decPart
}

func formatPercentES(value float64) string {
	s := strconv.FormatFloat(sanitize(value), 'f', 2, 64)
	return strings.ReplaceAll(s, ".", ",") + "%"
}

func formatNumberES(value float64, decimals int) string {
	s := strconv.FormatFloat(sanitize(value), 'f', decimals, 64)
	return strings.ReplaceAll(s, ".", ",")
}
