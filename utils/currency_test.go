package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		paise int64
		want  string
	}{
		{0, "0.00"},
		{50, "0.50"},
		{100, "1.00"},
		{5000, "50.00"},
		{99999, "999.99"},
		{100000, "1,000.00"},
		{12345678, "1,23,456.78"},
		{123456789, "12,34,567.89"},
		{10000000000, "10,00,00,000.00"},
		{-12345678, "-1,23,456.78"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupees(tt.paise), "paise=%d", tt.paise)
	}
}

func TestRupeesToPaise(t *testing.T) {
	assert.Equal(t, int64(50000), RupeesToPaise(500))
	assert.Equal(t, int64(49999), RupeesToPaise(499.99))
	assert.Equal(t, int64(1), RupeesToPaise(0.005))
	assert.Equal(t, int64(-50000), RupeesToPaise(-500))
}

func TestShortOrderID(t *testing.T) {
	assert.Equal(t, "6F1C2A9E", ShortOrderID("6f1c2a9e-4b3d-4c5a-8e7f-0a1b2c3d4e5f"))
	assert.Equal(t, "ABC", ShortOrderID("abc"))
	assert.Equal(t, "", ShortOrderID(""))
}
