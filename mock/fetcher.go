package mock

import (
	"context"

	"github.com/fwojciec/optcg"
)

var _ optcg.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of optcg.Fetcher.
type Fetcher struct {
	FetchFn      func(ctx context.Context, url string) (string, error)
	FetchBytesFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return f.FetchBytesFn(ctx, url)
}

var _ optcg.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of optcg.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *Limiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
