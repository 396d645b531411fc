package utils

import "time"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// MustParseRFC3339 parses a time string in RFC3339 format and panics on
// failure; intended for fixtures and tests, not for caller input.
func MustParseRFC3339(s string) time.Time {
	t, err := ParseRFC3339(s)
	if err != nil {
		panic(err)
	}
	return t
}
