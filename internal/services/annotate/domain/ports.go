package domain

import "context"

// FetcherPort resolves an accession to raw FASTA text.
// Implementations make a single attempt and return typed not-found or
// unavailable errors; the service never retries
type FetcherPort interface {
	FetchFASTA(ctx context.Context, accession string) (string, error)
}
