package usecase

import "context"

// Transactor runs fn as one atomic unit. Repositories pick the transaction up
// from the context passed to fn.
//
// WithinTx is the shared mode used by roster mutations and stat writes.
// WithinExclusiveTx excludes every shared transaction and is used by round start.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	WithinExclusiveTx(ctx context.Context, fn func(ctx context.Context) error) error
}
