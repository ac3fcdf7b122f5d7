package loan

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "Active"
	StatusPaid   Status = "Paid"
)

// Loan is the aggregate root. Invariants: CurrentBalance never exceeds
// Amount and only decreases, and Status is Paid exactly when the balance
// is zero. Paid is terminal.
type Loan struct {
	ID             string        `gorm:"primaryKey;size:36;column:id"`
	Amount         Money         `gorm:"type:decimal(18,2);column:amount"`
	CurrentBalance Money         `gorm:"type:decimal(18,2);column:current_balance"`
	ApplicantName  ApplicantName `gorm:"size:100;column:applicant_name"`
	Status         Status        `gorm:"size:10;column:status"`
	CreatedAt      time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (Loan) TableName() string { return "loans" }

func NewLoan(amount Money, applicant ApplicantName) *Loan {
	return &Loan{
		ID:             uuid.NewString(),
		Amount:         amount,
		CurrentBalance: amount,
		ApplicantName:  applicant,
		Status:         StatusActive,
	}
}

// ApplyPayment reduces the balance by payment and marks the loan Paid when
// it reaches zero. Non-positive or over-balance payments are ignored
// silently; the service performs the user-visible rejection before calling
// in, this guard stays as the aggregate's own line of defense.
func (l *Loan) ApplyPayment(payment Money) {
	if !payment.GreaterThan(NewMoney(0)) || payment.GreaterThan(l.CurrentBalance) {
		return
	}
	l.CurrentBalance = l.CurrentBalance.Sub(payment)
	if l.CurrentBalance.IsZero() {
		l.Status = StatusPaid
	}
}
