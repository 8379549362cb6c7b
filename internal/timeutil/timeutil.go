// Package timeutil provides time formatting for ffmpeg arguments and
// progress lines.
package timeutil

import (
	"fmt"
	"strconv"
)

// FormatSeconds converts seconds to HH:MM:SS.ss for display.
//
// Example:
//
//	FormatSeconds(0)      // "00:00:00.00"
//	FormatSeconds(90)     // "00:01:30.00"
//	FormatSeconds(3661)   // "01:01:01.00"
//	FormatSeconds(30.53)  // "00:00:30.53"
func FormatSeconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", hours, minutes, secs)
}

// FormatRange renders a segment as "start-end" in HH:MM:SS.ss.
func FormatRange(start, duration float64) string {
	return FormatSeconds(start) + "-" + FormatSeconds(start+duration)
}

// FormatOffset renders seconds for ffmpeg -ss/-t with the shortest decimal
// representation that round-trips, so consecutive parts stay contiguous.
// FormatSeconds is not used here: rounding to hundredths drifts over many parts.
func FormatOffset(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
