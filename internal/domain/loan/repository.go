package loan

import "context"

// Repository is the persistence contract for the Loan aggregate. Every call
// commits on its own; there is no cross-call transaction scope.
type Repository interface {
	// GetByID returns (nil, nil) when no loan matches.
	GetByID(ctx context.Context, id string) (*Loan, error)
	GetAll(ctx context.Context) ([]Loan, error)
	// Find filters a full scan with an opaque predicate; insertion order.
	Find(ctx context.Context, pred func(*Loan) bool) ([]Loan, error)
	Add(ctx context.Context, l *Loan) error
	Update(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, l *Loan) error
}
