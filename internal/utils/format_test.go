package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "500.000ns"},
		{1500 * time.Nanosecond, "1.500µs"},
		{2500 * time.Microsecond, "2.500ms"},
		{3 * time.Second, "3.000s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "0.000", FormatMillis(0))
	assert.Equal(t, "1.235", FormatMillis(1234567*time.Nanosecond))
}

func TestSizeKB(t *testing.T) {
	assert.Equal(t, int64(0), SizeKB(0))
	assert.Equal(t, int64(1), SizeKB(1))
	assert.Equal(t, int64(1), SizeKB(1024))
	assert.Equal(t, int64(2), SizeKB(1025))
}
