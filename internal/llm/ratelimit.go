package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimited spaces out calls to stay under a provider's request quota.
type RateLimited struct {
	Client
	limiter *rate.Limiter
}

// WithRateLimit wraps c so that it issues at most perMinute requests per
// minute. A non-positive limit returns c unchanged.
func WithRateLimit(c Client, perMinute int) Client {
	if perMinute <= 0 {
		return c
	}
	return &RateLimited{
		Client:  c,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

func (r *RateLimited) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.Client.Generate(ctx, req)
}
