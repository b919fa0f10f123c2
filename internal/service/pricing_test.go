package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		nights   int
		expected string
	}{
		{name: "three nights at 150.00", rate: "150.00", nights: 3, expected: "450.00"},
		{name: "one night", rate: "89.90", nights: 1, expected: "89.90"},
		{name: "cents do not drift", rate: "99.99", nights: 7, expected: "699.93"},
		{name: "long stay", rate: "120.50", nights: 30, expected: "3615.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := TotalPrice(decimal.RequireFromString(tt.rate), tt.nights)
			assert.True(t, price.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, price)
		})
	}
}

func TestTotalPriceIsExact(t *testing.T) {
	// 0.1 + 0.2 style drift must not appear: 10 nights at 0.30
	price := TotalPrice(decimal.RequireFromString("0.30"), 10)
	assert.Equal(t, "3.00", price.StringFixed(2))
}
