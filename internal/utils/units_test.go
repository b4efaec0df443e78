package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "11", FormatUnits(11, 0))
	assert.Equal(t, "0.11", FormatUnits(11, 2))
	assert.Equal(t, "1.50", FormatUnits(150, 2))
	assert.Equal(t, "0.000000000000000001", FormatUnits(1, 18))
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		in       string
		decimals int32
		want     int64
	}{
		{"10", 0, 10},
		{" 11 ", 0, 11},
		{"1.5", 2, 150},
		{"1.50", 2, 150},
		{"0.000000000000000002", 18, 2},
		{"-3", 0, -3},
		{"9223372036854775807", 0, 9223372036854775807},
	}
	for _, tt := range tests {
		got, err := ParseUnits(tt.in, tt.decimals)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseUnitsErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.5", "9223372036854775808", "1e30"} {
		_, err := ParseUnits(in, 0)
		assert.Error(t, err, in)
	}

	_, err := ParseUnits("1.234", 2)
	assert.Error(t, err)
}
