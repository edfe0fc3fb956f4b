package insights

import "time"

// Config holds generation settings.
type Config struct {
	PlanMaxTokens   int
	ReportMaxTokens int
	Temperature     float64

	// Timeout bounds one background request. Zero means no deadline.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		PlanMaxTokens:   900,
		ReportMaxTokens: 900,
		Temperature:     0.4,
		Timeout:         45 * time.Second,
	}
}
