package loan

import "testing"

func TestNewLoan_StartsActiveWithFullBalance(t *testing.T) {
	l := NewLoan(NewMoney(10000), NewApplicantName("Alice Mendoza"))

	if len(l.ID) != 36 {
		t.Fatalf("ID = %q, want a 36-char uuid", l.ID)
	}
	if l.CurrentBalance != l.Amount {
		t.Fatalf("balance = %v, want %v", l.CurrentBalance, l.Amount)
	}
	if l.Status != StatusActive {
		t.Fatalf("status = %s, want %s", l.Status, StatusActive)
	}
}

func TestApplyPayment_PartialKeepsActive(t *testing.T) {
	l := NewLoan(NewMoney(10000), NewApplicantName("Alice Mendoza"))

	l.ApplyPayment(NewMoney(2000))

	if got := l.CurrentBalance.Float64(); got != 8000 {
		t.Fatalf("balance = %v, want 8000", got)
	}
	if l.Status != StatusActive {
		t.Fatalf("status = %s, want %s", l.Status, StatusActive)
	}
	if l.CurrentBalance.GreaterThan(l.Amount) {
		t.Fatal("balance exceeds original amount")
	}
}

func TestApplyPayment_FullMarksPaid(t *testing.T) {
	l := NewLoan(NewMoney(5000), NewApplicantName("Carlos Rivas"))

	l.ApplyPayment(NewMoney(5000))

	if !l.CurrentBalance.IsZero() {
		t.Fatalf("balance = %v, want zero", l.CurrentBalance)
	}
	if l.Status != StatusPaid {
		t.Fatalf("status = %s, want %s", l.Status, StatusPaid)
	}
}

func TestApplyPayment_IgnoresInvalidPayments(t *testing.T) {
	cases := []struct {
		name    string
		payment float64
	}{
		{"zero", 0},
		{"negative", -500},
		{"over balance", 1500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLoan(NewMoney(1000), NewApplicantName("Laura"))
			l.ApplyPayment(NewMoney(tc.payment))

			if got := l.CurrentBalance.Float64(); got != 1000 {
				t.Fatalf("balance = %v, want unchanged 1000", got)
			}
			if l.Status != StatusActive {
				t.Fatalf("status = %s, want %s", l.Status, StatusActive)
			}
		})
	}
}

func TestApplyPayment_PaidIsTerminal(t *testing.T) {
	l := NewLoan(NewMoney(2500), NewApplicantName("Bruno"))
	l.ApplyPayment(NewMoney(2500))

	// any further positive payment exceeds the zero balance and is ignored
	l.ApplyPayment(NewMoney(2500))

	if !l.CurrentBalance.IsZero() || l.Status != StatusPaid {
		t.Fatalf("loan = %v/%s, want 0.00/%s", l.CurrentBalance, l.Status, StatusPaid)
	}
}

func TestMoney_Ops(t *testing.T) {
	a, b := NewMoney(300), NewMoney(100)

	if got := a.Sub(b).Float64(); got != 200 {
		t.Fatalf("Sub = %v, want 200", got)
	}
	if !a.GreaterThan(b) || a.LessThan(b) {
		t.Fatal("comparison mismatch for 300 vs 100")
	}
	if !NewMoney(0).IsZero() || a.IsZero() {
		t.Fatal("IsZero mismatch")
	}
	if got := a.String(); got != "300.00" {
		t.Fatalf("String = %q, want %q", got, "300.00")
	}
}

func TestMoney_ScanDecimalBytes(t *testing.T) {
	var m Money
	if err := m.Scan([]byte("1234.50")); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if m.Float64() != 1234.5 {
		t.Fatalf("scan = %v, want 1234.5", m.Float64())
	}
	if err := m.Scan(struct{}{}); err == nil {
		t.Fatal("want error for unsupported source type")
	}
}

func TestApplicantName_TrimsWhitespace(t *testing.T) {
	if got := NewApplicantName("  Alice Mendoza  ").String(); got != "Alice Mendoza" {
		t.Fatalf("got %q", got)
	}
	// blank input collapses to empty; rejecting that is the boundary's job
	if got := NewApplicantName("   ").String(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{ID: "0b56f185-4d4b-4a44-9a52-5d2e1c0a9b3a"}
	want := "Loan with id '0b56f185-4d4b-4a44-9a52-5d2e1c0a9b3a' was not found."
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}
