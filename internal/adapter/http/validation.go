package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// a whitespace-only name collapses to empty once normalized; treat it
	// as missing here so it never reaches the service
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Per-field validation texts; these are part of the API contract.
var validationMessages = map[string]string{
	"Amount|required":        "Loan amount must be greater than zero.",
	"Amount|gt":              "Loan amount must be greater than zero.",
	"ApplicantName|required": "Applicant name is required.",
	"ApplicantName|notblank": "Applicant name is required.",
	"ApplicantName|max":      "Applicant name cannot exceed 100 characters.",
	"PaymentAmount|required": "Payment amount must be greater than zero.",
	"PaymentAmount|gt":       "Payment amount must be greater than zero.",
}

// ToMessages flattens validator errors into the strings the envelope carries.
func ToMessages(err error) []string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ve))
	for _, e := range ve {
		if msg, ok := validationMessages[e.Field()+"|"+e.Tag()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, e.Field()+" "+e.Tag()+" validation failed")
	}
	return out
}

func joinMessages(msgs []string) string { return strings.Join(msgs, "; ") }
