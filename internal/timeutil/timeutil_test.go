package timeutil

import "testing"

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"Zero", 0, "00:00:00.00"},
		{"One second", 1, "00:00:01.00"},
		{"One minute", 60, "00:01:00.00"},
		{"One hour", 3600, "01:00:00.00"},
		{"Complex time", 3661, "01:01:01.00"},
		{"Large time", 86400, "24:00:00.00"},
		{"90 seconds", 90, "00:01:30.00"},
		{"Fractional seconds", 30.53, "00:00:30.53"},
		{"Sub-second", 0.5, "00:00:00.50"},
		{"No rounding", 1.994, "00:00:01.99"},
		{"Minute with fraction", 90.75, "00:01:30.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatSeconds(tt.seconds)
			if result != tt.expected {
				t.Errorf("FormatSeconds(%.3f) = %s; want %s", tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	if got := FormatRange(60, 30.5); got != "00:01:00.00-00:01:30.50" {
		t.Errorf("FormatRange(60, 30.5) = %s", got)
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0"},
		{30, "30"},
		{33.333333333333336, "33.333333333333336"},
		{0.5, "0.5"},
	}

	for _, tt := range tests {
		if got := FormatOffset(tt.seconds); got != tt.expected {
			t.Errorf("FormatOffset(%v) = %s; want %s", tt.seconds, got, tt.expected)
		}
	}
}
