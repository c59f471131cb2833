package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrGenerationFailed   = fmt.Errorf("recommendation generation failed")
	ErrNoResults          = fmt.Errorf("no matching video found")

	// Input validation errors
	ErrInvalidInput = fmt.Errorf("invalid input")
)
