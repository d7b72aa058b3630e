package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyINR(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{15, "₹15"},
		{263, "₹263"},
		{1263, "₹1,263"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{-263, "-₹263"},
		{-1234567, "-₹12,34,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrencyINR(tt.amount))
	}
}
