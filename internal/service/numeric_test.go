package service

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{name: "nil", value: nil, expected: 0},
		{name: "float64", value: 1234.56, expected: 1234.56},
		{name: "int", value: 42, expected: 42},
		{name: "int64", value: int64(-7), expected: -7},
		{name: "NaN is zero", value: math.NaN(), expected: 0},
		{name: "Inf is zero", value: math.Inf(1), expected: 0},
		{name: "negative Inf is zero", value: math.Inf(-1), expected: 0},
		{name: "true", value: true, expected: 1},
		{name: "false", value: false, expected: 0},
		{name: "json.Number", value: json.Number("12.5"), expected: 12.5},
		{name: "empty string", value: "", expected: 0},
		{name: "blank string", value: "   ", expected: 0},
		{name: "plain decimal string", value: "1234.56", expected: 1234.56},
		{name: "EN thousands", value: "1,234.56", expected: 1234.56},
		{name: "EN large", value: "1,234,567.89", expected: 1234567.89},
		{name: "ES thousands", value: "1.234,56", expected: 1234.56},
		{name: "ES large", value: "1.234.567,89", expected: 1234567.89},
		{name: "ES negative", value: "-1.234,50", expected: -1234.5},
		{name: "dollar sign and spaces", value: "$ 2,500.00", expected: 2500},
		{name: "percent sign", value: "15%", expected: 15},
		{name: "comma decimal without thousands", value: "1234,56", expected: 1234.56},
		{name: "garbage", value: "abc", expected: 0},
		{name: "amount inside text", value: "aprox 1.200,5 al mes", expected: 1200.5},
		{name: "trailing currency word", value: "100 USD", expected: 100},
		{name: "ambiguous double dots", value: "12.34.56", expected: 1234.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, toFloat(tt.value), 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-5, 0, 100))
	assert.Equal(t, 100.0, clamp(250, 0, 100))
	assert.Equal(t, 42.0, clamp(42, 0, 100))
}
