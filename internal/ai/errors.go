package ai

import "errors"

// ErrUnavailable means no credential is configured for the provider.
// Callers degrade on it instead of failing the conversation.
var ErrUnavailable = errors.New("ai provider unavailable")
