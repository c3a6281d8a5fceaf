package util

import "errors"

var (
	ErrStoreNotConfigured = errors.New("database not configured")
	ErrStoreUnavailable   = errors.New("database unavailable")
	ErrAPIKeyNotSet       = errors.New("OPENAI_API_KEY not set")
	ErrUpstreamAI         = errors.New("AI API error")
)
