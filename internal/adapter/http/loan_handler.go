package http

import (
	"errors"
	"net/http"

	domain "loan-service/internal/domain/loan"
	"loan-service/internal/usecase/loan"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) Register(e *echo.Echo) {
	e.GET("/loan", h.ListLoans)
	e.GET("/loan/:id", h.GetLoan)
	e.POST("/loan", h.CreateLoan)
	e.POST("/loan/:id/payment", h.ApplyPayment)
}

type createLoanReq struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	ApplicantName string  `json:"applicantName" validate:"required,notblank,max=100"`
}

type paymentReq struct {
	PaymentAmount float64 `json:"paymentAmount" validate:"required,gt=0"`
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.GetAll(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, http.StatusOK, dtos, "")
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, err := loanID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, err.Error())
	}
	dto, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, http.StatusOK, dto, "")
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, joinMessages(ToMessages(err)))
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		Amount:        req.Amount,
		ApplicantName: req.ApplicantName,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, http.StatusCreated, dto, "Loan created successfully.")
}

func (h *LoanHandler) ApplyPayment(c echo.Context) error {
	id, err := loanID(c)
	if err != nil {
		return respondError(c, http.StatusNotFound, err.Error())
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, joinMessages(ToMessages(err)))
	}
	dto, err := h.uc.ApplyPayment(c.Request().Context(), id, req.PaymentAmount)
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, http.StatusOK, dto, "Payment applied successfully.")
}

// loanID enforces the uuid shape of the path parameter. A malformed id can
// never match a stored loan, so it surfaces as the same not-found failure.
func loanID(c echo.Context) (string, error) {
	raw := c.Param("id")
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", &domain.NotFoundError{ID: raw}
	}
	return parsed.String(), nil
}

// fail maps service errors onto the envelope and status the API promises.
// Anything untyped is a 500 with a generic message; the detail goes to the
// log only.
func (h *LoanHandler) fail(c echo.Context, err error) error {
	var nf *domain.NotFoundError
	var be domain.BusinessError
	switch {
	case errors.As(err, &nf):
		return respondError(c, http.StatusNotFound, nf.Error())
	case errors.As(err, &be):
		return respondError(c, http.StatusBadRequest, be.Error())
	default:
		c.Logger().Error(err)
		return respondError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
