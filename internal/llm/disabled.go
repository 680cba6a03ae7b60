package llm

import (
	"context"
	"fmt"
)

// disabledClient is the Client used when the model integration is
// switched off. Every call fails fast with ErrUnavailable.
type disabledClient struct{}

// NewDisabledClient returns a Client that always reports unavailable.
func NewDisabledClient() Client {
	return disabledClient{}
}

func (disabledClient) Generate(context.Context, GenerateRequest) (*GenerateResponse, error) {
	return nil, fmt.Errorf("%w: set MAJEL_LLM_ENABLED=true and provide an API key", ErrUnavailable)
}

func (disabledClient) Available(context.Context) bool { return false }
