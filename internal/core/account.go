package core

import (
	"strings"
	"unicode/utf8"
)

// Account is one customer ledger. Movements are chronological and
// append-only: a positive amount is a deposit, a negative one a
// withdrawal or outgoing transfer. Balance and the summary totals are
// always derived from Movements, never stored.
//
// Owner and Handle are fixed at construction; handle uniqueness is
// enforced by the Directory.
type Account struct {
	Owner        string
	Handle       string
	PIN          int
	InterestRate float64
	Movements    []float64
}

// DeriveHandle maps an owner display name to its login handle: the
// lowercased initial of each space-separated name part, concatenated
// in order. "Sarah Smith" becomes "ss". Callers pass trimmed names
// with single spaces between parts.
func DeriveHandle(owner string) string {
	var b strings.Builder
	for _, part := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return b.String()
}

// NewAccount validates the account data, derives the handle and copies
// the opening movements.
func NewAccount(owner string, pin int, interestRate float64, movements []float64) (*Account, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrBadOwner
	}
	if pin < 1000 || pin > 9999 {
		return nil, ErrBadPIN
	}
	if interestRate < 0 {
		return nil, ErrBadRate
	}

	return &Account{
		Owner:        owner,
		Handle:       DeriveHandle(owner),
		PIN:          pin,
		InterestRate: interestRate,
		Movements:    append([]float64(nil), movements...),
	}, nil
}

// Balance is the sum of all movements, recomputed on every call.
func (a *Account) Balance() float64 {
	var sum float64
	for _, mov := range a.Movements {
		sum += mov
	}
	return sum
}

func (a *Account) HasSufficientFunds(amount float64) bool {
	return a.Balance() >= amount
}

// Summary holds the derived statement totals.
type Summary struct {
	IncomeTotal   float64
	OutgoTotal    float64
	InterestTotal float64
}

// Summarize recomputes the statement totals from scratch. Interest is
// earned per deposit at the account rate; a deposit only counts when
// its own interest comes to at least one unit.
func (a *Account) Summarize() Summary {
	var s Summary
	for _, mov := range a.Movements {
		if mov > 0 {
			s.IncomeTotal += mov
			if interest := mov * a.InterestRate / 100; interest >= 1 {
				s.InterestTotal += interest
			}
		} else {
			s.OutgoTotal += -mov
		}
	}
	return s
}

func (a *Account) deposit(amount float64) {
	a.Movements = append(a.Movements, amount)
}

func (a *Account) withdraw(amount float64) {
	a.Movements = append(a.Movements, -amount)
}
