package repositories

import "context"

// DocumentCounterRepository allocates sequential document numbers.
// NextSequence performs an atomic increment on the counter row for the
// given scope, so two concurrent callers never observe the same value.
// Allocated values are never reused, even when the document that consumed
// one is later deleted or its transaction rolls back.
type DocumentCounterRepository interface {
	NextSequence(ctx context.Context, scope string) (int64, error)
}
