package llm

import "errors"

var (
	// ErrUnavailable indicates the Gemini endpoint is unreachable.
	ErrUnavailable = errors.New("gemini endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the model returned no usable candidate.
	ErrEmptyResponse = errors.New("empty llm response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
