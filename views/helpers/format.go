package helpers

import (
	"fmt"
	"strings"
	"time"
)

// FormatPrice formats cents as dollars (e.g., 1599 -> "$15.99")
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// FormatRating formats an average rating with one decimal (e.g., 4 -> "4.0")
func FormatRating(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}

// Stars renders a rating as filled and empty stars, rounding to the nearest whole star.
func Stars(avg float64) string {
	filled := int(avg + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// FormatDate formats a time.Time as "Jan 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime formats a time.Time as "Jan 2, 2006 3:04 PM"
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// FormatMinutes renders a duration in minutes as "1 hr 15 min".
func FormatMinutes(m int64) string {
	switch {
	case m <= 0:
		return "-"
	case m < 60:
		return fmt.Sprintf("%d min", m)
	case m%60 == 0:
		return fmt.Sprintf("%d hr", m/60)
	default:
		return fmt.Sprintf("%d hr %d min", m/60, m%60)
	}
}
