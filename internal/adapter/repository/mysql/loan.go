package mysql

import (
	"context"
	"errors"

	domain "loan-service/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	var out domain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) GetAll(ctx context.Context) ([]domain.Loan, error) {
	var out []domain.Loan
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Find runs the predicate over a full scan. The loan book is small and the
// contract keeps predicates opaque, so nothing is pushed down to SQL.
func (r *LoanRepository) Find(ctx context.Context, pred func(*domain.Loan) bool) ([]domain.Loan, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Loan, 0, len(all))
	for i := range all {
		if pred(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (r *LoanRepository) Add(ctx context.Context, l *domain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Update(ctx context.Context, l *domain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) Delete(ctx context.Context, l *domain.Loan) error {
	return r.db.WithContext(ctx).Delete(l).Error
}
