package config

import "fmt"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Trending constraints
	TrendingListSize int
	TrendingMarker   rune

	// Record constraints (enforced by the ingest-side validators only;
	// the stores accept caller-validated records as-is)
	MaxDisplayNameLength int
	MaxPostTextLength    int
	MinDisplayNameLength int
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		// Trending constraints
		TrendingListSize: 10,
		TrendingMarker:   '#',

		// Record constraints
		MaxDisplayNameLength: 100,
		MaxPostTextLength:    280,
		MinDisplayNameLength: 1,
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.TrendingListSize <= 0 {
		return fmt.Errorf("trending list size must be positive, got %d", c.TrendingListSize)
	}
	if c.TrendingMarker == 0 {
		return fmt.Errorf("trending marker must be set")
	}
	if c.MinDisplayNameLength < 1 {
		return fmt.Errorf("minimum display name length must be at least 1, got %d", c.MinDisplayNameLength)
	}
	if c.MaxDisplayNameLength < c.MinDisplayNameLength {
		return fmt.Errorf("maximum display name length %d is below the minimum %d",
			c.MaxDisplayNameLength, c.MinDisplayNameLength)
	}
	if c.MaxPostTextLength <= 0 {
		return fmt.Errorf("maximum post text length must be positive, got %d", c.MaxPostTextLength)
	}
	return nil
}
