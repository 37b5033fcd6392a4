package config

import (
	"os"
	"strconv"
)

// FollowupConfig holds settings for the external follow-up generation
// service. When no endpoint is configured the insight engine runs fully
// offline on its template library.
type FollowupConfig struct {
	Endpoint  string `json:"endpoint"`
	APIKey    string `json:"-"` // Never serialize
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultFollowupConfig reads the follow-up service configuration from the
// environment
func DefaultFollowupConfig() *FollowupConfig {
	timeout := 8000
	if v := os.Getenv("FOLLOWUP_TIMEOUT_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = parsed
		}
	}
	return &FollowupConfig{
		Endpoint:  os.Getenv("FOLLOWUP_ENDPOINT"),
		APIKey:    os.Getenv("FOLLOWUP_API_KEY"),
		TimeoutMS: timeout,
	}
}

// IsEnabled returns true if an external endpoint is configured
func (c *FollowupConfig) IsEnabled() bool {
	return c.Endpoint != ""
}
