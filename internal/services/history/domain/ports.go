package domain

import "context"

// WriterPort records completed analyses. Recording is best effort; callers
// log failures and keep serving
type WriterPort interface {
	Record(ctx context.Context, in WriteInput) error
}

// ReaderPort lists recent analyses
type ReaderPort interface {
	Recent(ctx context.Context, limit int) ([]Analysis, error)
}
