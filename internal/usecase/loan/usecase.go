package loan

import (
	"context"

	"loan-service/internal/domain/loan"
)

type Usecase struct{ repo loan.Repository }

func NewUsecase(r loan.Repository) *Usecase { return &Usecase{repo: r} }

type CreateLoanInput struct {
	Amount        float64 `json:"amount"`
	ApplicantName string  `json:"applicantName"`
}

// LoanDTO is the externally visible projection of a loan.
type LoanDTO struct {
	ID             string  `json:"id"`
	Amount         float64 `json:"amount"`
	CurrentBalance float64 `json:"currentBalance"`
	ApplicantName  string  `json:"applicantName"`
	Status         string  `json:"status"`
}

// Create persists a new active loan with its balance equal to the amount.
// Input is already vetted at the HTTP boundary; no validation happens here.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	l := loan.NewLoan(loan.NewMoney(in.Amount), loan.NewApplicantName(in.ApplicantName))
	if err := u.repo.Add(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*LoanDTO, error) {
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, &loan.NotFoundError{ID: id}
	}
	return toDTO(l), nil
}

func (u *Usecase) GetAll(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out, nil
}

// ApplyPayment loads the loan, rejects overpayments, applies the payment
// on the aggregate and persists it. The overpayment check here is the
// authoritative one; the aggregate's internal guard never fires on this
// path.
func (u *Usecase) ApplyPayment(ctx context.Context, id string, amount float64) (*LoanDTO, error) {
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, &loan.NotFoundError{ID: id}
	}

	payment := loan.NewMoney(amount)
	if payment.GreaterThan(l.CurrentBalance) {
		return nil, loan.ErrPaymentExceedsBalance
	}

	l.ApplyPayment(payment)
	if err := u.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		ID:             l.ID,
		Amount:         l.Amount.Float64(),
		CurrentBalance: l.CurrentBalance.Float64(),
		ApplicantName:  l.ApplicantName.String(),
		Status:         string(l.Status),
	}
}
