package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"minibank/internal/core"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	PIN      string `json:"pin" validate:"required,len=4,numeric"`
}

type TransferRequest struct {
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

type LoanRequest struct {
	Amount string `json:"amount" validate:"required"`
}

type CloseAccountRequest struct {
	Username string `json:"username" validate:"required"`
	PIN      string `json:"pin" validate:"required,len=4,numeric"`
}

// ParseAmount converts a raw form amount into the numeric value the
// core accepts. Sign rules stay with the core: a parsed negative
// amount is handed over as-is and rejected there.
func ParseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("amount cannot be empty")
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %w", err)
	}

	return amount, nil
}

// ParsePIN converts the raw pin field; the 4-digit shape is already
// enforced by the request validation tags.
func ParsePIN(raw string) (int, error) {
	pin, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid pin format: %w", err)
	}

	return pin, nil
}

// StatementResponse is the rendered view of the logged-in account.
type StatementResponse struct {
	Owner         string              `json:"owner"`
	Username      string              `json:"username"`
	Movements     []StatementMovement `json:"movements"`
	Balance       float64             `json:"balance"`
	IncomeTotal   float64             `json:"income_total"`
	OutgoTotal    float64             `json:"outgo_total"`
	InterestTotal float64             `json:"interest_total"`
	Sorted        bool                `json:"sorted"`
}

type StatementMovement struct {
	Index  int     `json:"index"`
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

func NewStatementResponse(model core.DisplayModel, sorted bool) StatementResponse {
	movements := make([]StatementMovement, len(model.Movements))
	for i, line := range model.Movements {
		movements[i] = StatementMovement{
			Index:  line.Index,
			Kind:   line.Kind,
			Amount: line.Amount,
		}
	}

	return StatementResponse{
		Owner:         model.Owner,
		Username:      model.Handle,
		Movements:     movements,
		Balance:       model.Balance,
		IncomeTotal:   model.IncomeTotal,
		OutgoTotal:    model.OutgoTotal,
		InterestTotal: model.InterestTotal,
		Sorted:        sorted,
	}
}
