package services

import (
	"fmt"
	"time"
)

// FormatRemaining renders a countdown as mm:ss, or h:mm:ss from one hour up.
// Partial seconds round up so that the display only shows 00:00 at zero.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "00:00"
	}

	total := int64((d + time.Second - 1) / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatMinutes renders a configured length, e.g. "25m" or "1.5m".
func FormatMinutes(minutes float64) string {
	return fmt.Sprintf("%gm", minutes)
}
