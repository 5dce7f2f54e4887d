package core

import (
	"slices"
)

// Movement kinds as shown on a statement.
const (
	KindDeposit    = "deposit"
	KindWithdrawal = "withdrawal"
)

// MovementLine is one row of a rendered statement. Index is the
// 1-based position in the displayed order.
type MovementLine struct {
	Index  int
	Kind   string
	Amount float64
}

// DisplayModel is everything the rendering layer needs for one account
// view. All aggregates are computed here; the renderer must not redo
// them.
type DisplayModel struct {
	Owner         string
	Handle        string
	Movements     []MovementLine
	Balance       float64
	IncomeTotal   float64
	OutgoTotal    float64
	InterestTotal float64
}

// NewDisplayModel builds the view for one account. With sorted set the
// lines are ordered ascending by amount; either way the account's
// stored movement sequence is left untouched.
func NewDisplayModel(acc *Account, sorted bool) DisplayModel {
	movements := acc.Movements
	if sorted {
		movements = slices.Clone(movements)
		slices.Sort(movements)
	}

	lines := make([]MovementLine, len(movements))
	for i, mov := range movements {
		kind := KindWithdrawal
		if mov > 0 {
			kind = KindDeposit
		}
		lines[i] = MovementLine{Index: i + 1, Kind: kind, Amount: mov}
	}

	summary := acc.Summarize()

	return DisplayModel{
		Owner:         acc.Owner,
		Handle:        acc.Handle,
		Movements:     lines,
		Balance:       acc.Balance(),
		IncomeTotal:   summary.IncomeTotal,
		OutgoTotal:    summary.OutgoTotal,
		InterestTotal: summary.InterestTotal,
	}
}
