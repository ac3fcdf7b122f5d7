package db

import (
	"context"

	domain "loan-service/internal/domain/loan"

	"gorm.io/gorm"
)

// Seed inserts the demo loan book. It only runs against an empty table, so
// restarts never duplicate data.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Loan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	mk := func(amount float64, name string, payment float64) *domain.Loan {
		l := domain.NewLoan(domain.NewMoney(amount), domain.NewApplicantName(name))
		if payment > 0 {
			l.ApplyPayment(domain.NewMoney(payment))
		}
		return l
	}
	loans := []*domain.Loan{
		mk(10000, "Alice Mendoza", 2000),
		mk(5000, "Carlos Rivas", 5000),
		mk(12000, "Laura Núñez", 0),
		mk(7500, "Pedro Suárez", 2500),
	}
	return db.WithContext(ctx).Create(&loans).Error
}
