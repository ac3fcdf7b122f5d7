package loan

import "fmt"

// NotFoundError reports a lookup for a loan id with no matching record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Loan with id '%s' was not found.", e.ID)
}

// BusinessError is a semantically invalid operation on a valid loan.
type BusinessError string

func (e BusinessError) Error() string { return string(e) }

const ErrPaymentExceedsBalance = BusinessError("Payment exceeds the current loan balance.")
