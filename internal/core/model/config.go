package model

import "time"

const (
	// DefaultTickInterval is the nominal countdown period.
	DefaultTickInterval = time.Second
	// DefaultMaxSeconds is the longest countdown that renders as MM:SS (59:59).
	DefaultMaxSeconds = 3599
)

// CountdownConfig contains runtime settings for the countdown state machine.
type CountdownConfig struct {
	TickInterval time.Duration
	MaxSeconds   int
}

// DefaultCountdownConfig returns the one-second, 59:59 configuration.
func DefaultCountdownConfig() CountdownConfig {
	return CountdownConfig{
		TickInterval: DefaultTickInterval,
		MaxSeconds:   DefaultMaxSeconds,
	}
}

// Normalized fills zero or invalid fields with defaults.
func (config CountdownConfig) Normalized() CountdownConfig {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.MaxSeconds <= 0 || config.MaxSeconds > DefaultMaxSeconds {
		config.MaxSeconds = DefaultMaxSeconds
	}
	return config
}
