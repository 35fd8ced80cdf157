package optcg

import "context"

// Fetcher retrieves content from the vendor site.
// Implementations hide transport concerns; the extraction core only ever
// sees the returned HTML.
type Fetcher interface {
	// Fetch retrieves the HTML content of a URL.
	Fetch(ctx context.Context, url string) (string, error)

	// FetchBytes retrieves the raw bytes of a URL (card images).
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Limiter gates outbound requests per domain.
type Limiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
