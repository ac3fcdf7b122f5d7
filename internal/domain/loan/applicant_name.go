package loan

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// ApplicantName is a display name normalized at construction. Emptiness and
// length limits are enforced at the HTTP boundary, not here.
type ApplicantName struct {
	value string
}

// NewApplicantName trims surrounding whitespace and stores the rest verbatim.
func NewApplicantName(value string) ApplicantName {
	return ApplicantName{value: strings.TrimSpace(value)}
}

func (n ApplicantName) String() string { return n.value }

func (n ApplicantName) Value() (driver.Value, error) { return n.value, nil }

func (n *ApplicantName) Scan(src any) error {
	switch v := src.(type) {
	case string:
		n.value = v
	case []byte:
		n.value = string(v)
	case nil:
		n.value = ""
	default:
		return fmt.Errorf("applicant name: unsupported source type %T", src)
	}
	return nil
}
