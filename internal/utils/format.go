package utils

import (
	"fmt"
	"math"
	"time"
)

// Format the duration into a human-readable string
func FormatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%.3fns", float64(d)/float64(time.Nanosecond))
	} else if d < time.Millisecond {
		return fmt.Sprintf("%.3fµs", float64(d)/float64(time.Microsecond))
	} else if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.3fs", float64(d)/float64(time.Second))
}

// FormatMillis renders d as milliseconds with three decimals, without unit.
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}

// SizeKB rounds a byte count up to whole kibibytes.
func SizeKB(size int64) int64 {
	return int64(math.Ceil(float64(size) / 1024))
}
