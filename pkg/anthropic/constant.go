package anthropic

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-sonnet-4-20250514"

	// DefaultAPIURL is the default Anthropic API endpoint
	DefaultAPIURL = "https://api.anthropic.com/v1"

	// APIVersion is the anthropic-version header value
	APIVersion = "2023-06-01"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
