package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClient struct{ calls int }

func (c *countingClient) Name() string { return "counting" }

func (c *countingClient) Generate(context.Context, Request) (*Response, error) {
	c.calls++
	return &Response{Text: "ok"}, nil
}

func TestWithRateLimit(t *testing.T) {
	inner := &countingClient{}
	assert.Same(t, Client(inner), WithRateLimit(inner, 0))

	limited := WithRateLimit(inner, 600000)
	assert.Equal(t, "counting", limited.Name())
	for i := 0; i < 3; i++ {
		_, err := limited.Generate(context.Background(), Request{})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.calls)
}

func TestWithRateLimit_CancelledContext(t *testing.T) {
	inner := &countingClient{}
	limited := WithRateLimit(inner, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := limited.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, inner.calls)
}
