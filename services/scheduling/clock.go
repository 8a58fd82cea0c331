package scheduling

import "fmt"

// ParseClock converts a zero-padded "HH:MM" clock string to minutes since
// midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil || len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock string %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes since midnight to a zero-padded "HH:MM"
// string. Fixed width keeps clock strings lexicographically comparable.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
