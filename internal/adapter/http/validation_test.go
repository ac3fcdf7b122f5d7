package http

import (
	"strings"
	"testing"
)

type createCheck struct {
	Amount        float64 `validate:"required,gt=0"`
	ApplicantName string  `validate:"required,notblank,max=100"`
}

func TestToMessages_MapsKnownTags(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(createCheck{Amount: -5, ApplicantName: strings.Repeat("x", 101)})
	if err == nil {
		t.Fatal("want validation error")
	}
	msgs := ToMessages(err)
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(msgs), msgs)
	}
	if msgs[0] != "Loan amount must be greater than zero." {
		t.Fatalf("msgs[0] = %q", msgs[0])
	}
	if msgs[1] != "Applicant name cannot exceed 100 characters." {
		t.Fatalf("msgs[1] = %q", msgs[1])
	}
}

func TestToMessages_ZeroValuesHitRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(createCheck{})
	if err == nil {
		t.Fatal("want validation error")
	}
	msgs := ToMessages(err)
	if !containsMsg(msgs, "Loan amount must be greater than zero.") {
		t.Fatalf("missing amount text: %v", msgs)
	}
	if !containsMsg(msgs, "Applicant name is required.") {
		t.Fatalf("missing name text: %v", msgs)
	}
}

func TestToMessages_WhitespaceNameIsRequired(t *testing.T) {
	cv := NewValidator()

	// whitespace-only trims to empty in the domain, so it must be caught here
	err := cv.Validate(createCheck{Amount: 100, ApplicantName: "   "})
	if err == nil {
		t.Fatal("want validation error for whitespace-only name")
	}
	msgs := ToMessages(err)
	if len(msgs) != 1 || msgs[0] != "Applicant name is required." {
		t.Fatalf("msgs = %v", msgs)
	}
}

func TestJoinMessages(t *testing.T) {
	got := joinMessages([]string{"a.", "b."})
	if got != "a.; b." {
		t.Fatalf("got %q", got)
	}
}

func containsMsg(msgs []string, want string) bool {
	for _, m := range msgs {
		if m == want {
			return true
		}
	}
	return false
}
