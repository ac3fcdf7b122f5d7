package loanmock

import (
	"context"

	domain "loan-service/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookup functions report context.Canceled so a test that forgot to
// stub a path fails loudly.
type Repo struct {
	GetByIDFn func(ctx context.Context, id string) (*domain.Loan, error)
	GetAllFn  func(ctx context.Context) ([]domain.Loan, error)
	FindFn    func(ctx context.Context, pred func(*domain.Loan) bool) ([]domain.Loan, error)
	AddFn     func(ctx context.Context, l *domain.Loan) error
	UpdateFn  func(ctx context.Context, l *domain.Loan) error
	DeleteFn  func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetAll(ctx context.Context) ([]domain.Loan, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Find(ctx context.Context, pred func(*domain.Loan) bool) ([]domain.Loan, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, pred)
	}
	return nil, context.Canceled
}

func (m *Repo) Add(ctx context.Context, l *domain.Loan) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, l)
	}
	return nil
}

func (m *Repo) Update(ctx context.Context, l *domain.Loan) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, l *domain.Loan) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, l)
	}
	return nil
}
