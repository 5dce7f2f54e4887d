package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"minibank/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=handlers.go -destination=session_mock.go -package=http

// SessionController is the slice of the banking session the transport
// drives. Core operations reject invalid requests with sentinel errors
// and mutate nothing.
type SessionController interface {
	Login(handle string, pin int) error
	Transfer(amount float64, recipientHandle string) error
	RequestLoan(amount float64) error
	CloseAccount(handle string, pin int) error
	ToggleSort()
	Sorted() bool
	Current() *core.Account
}

type Handler struct {
	session SessionController
	logger  core.Logger
}

func NewHandler(session SessionController, logger core.Logger) Handler {
	return Handler{
		session: session,
		logger:  logger,
	}
}

func (h Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	pin, err := ParsePIN(req.PIN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.session.Login(req.Username, pin); err != nil {
		// The core rejects silently; the API still names the reason.
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	h.writeStatement(r.Context(), w)
}

func (h Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	h.writeStatement(r.Context(), w)
}

func (h Handler) PostSort(w http.ResponseWriter, r *http.Request) {
	h.session.ToggleSort()

	if h.session.Current() == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeStatement(r.Context(), w)
}

func (h Handler) PostTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if !h.decode(w, r, &req) {
		return
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.session.Transfer(amount, req.To); err != nil {
		switch {
		case errors.Is(err, core.ErrLoggedOut):
			http.Error(w, "Not logged in", http.StatusUnauthorized)
		case errors.Is(err, core.ErrUnknownRecipient):
			http.Error(w, "Recipient not found", http.StatusNotFound)
		case errors.Is(err, core.ErrInsufficientFunds):
			http.Error(w, "Insufficient funds for transfer", http.StatusUnprocessableEntity)
		case errors.Is(err, core.ErrBadAmount), errors.Is(err, core.ErrSelfTransfer):
			http.Error(w, "Invalid transfer", http.StatusBadRequest)
		default:
			h.logger.ErrorContext(r.Context(), "Failed to process transfer", "error", err)
			http.Error(w, "Failed to process transfer", http.StatusInternalServerError)
		}
		return
	}

	h.writeStatement(r.Context(), w)
}

func (h Handler) PostLoan(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if !h.decode(w, r, &req) {
		return
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.session.RequestLoan(amount); err != nil {
		switch {
		case errors.Is(err, core.ErrLoggedOut):
			http.Error(w, "Not logged in", http.StatusUnauthorized)
		case errors.Is(err, core.ErrBadAmount):
			http.Error(w, "Invalid loan amount", http.StatusBadRequest)
		case errors.Is(err, core.ErrLoanDenied):
			http.Error(w, "Loan denied", http.StatusUnprocessableEntity)
		default:
			h.logger.ErrorContext(r.Context(), "Failed to process loan", "error", err)
			http.Error(w, "Failed to process loan", http.StatusInternalServerError)
		}
		return
	}

	h.writeStatement(r.Context(), w)
}

func (h Handler) PostCloseAccount(w http.ResponseWriter, r *http.Request) {
	var req CloseAccountRequest
	if !h.decode(w, r, &req) {
		return
	}

	pin, err := ParsePIN(req.PIN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.session.CloseAccount(req.Username, pin); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

func (h Handler) writeStatement(ctx context.Context, w http.ResponseWriter) {
	acc := h.session.Current()
	if acc == nil {
		http.Error(w, "Not logged in", http.StatusUnauthorized)
		return
	}

	sorted := h.session.Sorted()
	resp := NewStatementResponse(core.NewDisplayModel(acc, sorted), sorted)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.ErrorContext(ctx, "Failed to encode statement", "error", err)
	}
}
