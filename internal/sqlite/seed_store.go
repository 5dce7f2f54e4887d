package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"minibank/internal/core"
)

// SeedStore reads the startup account book from a fixture database.
// The database is only ever read: once the directory is built, ledger
// state lives in memory for the lifetime of the process and nothing is
// written back.
type SeedStore struct {
	db *sql.DB
}

func NewSeedStore(db *sql.DB) SeedStore {
	return SeedStore{
		db: db,
	}
}

// LoadDirectory reads every account with its movements in recorded
// order and builds the in-memory directory. Handle uniqueness is
// enforced by the directory itself, so a bad fixture fails loudly at
// startup.
func (s SeedStore) LoadDirectory(ctx context.Context) (*core.Directory, error) {
	query := `
		SELECT id, owner, pin, interest_rate
		FROM accounts
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	type seedAccount struct {
		id    int64
		owner string
		pin   int
		rate  float64
	}

	var seeds []seedAccount
	for rows.Next() {
		var sa seedAccount
		if err := rows.Scan(&sa.id, &sa.owner, &sa.pin, &sa.rate); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		seeds = append(seeds, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	accounts := make([]*core.Account, 0, len(seeds))
	for _, sa := range seeds {
		movements, err := s.loadMovements(ctx, sa.id)
		if err != nil {
			return nil, err
		}

		account, err := core.NewAccount(sa.owner, sa.pin, sa.rate, movements)
		if err != nil {
			return nil, fmt.Errorf("invalid seed account %q: %w", sa.owner, err)
		}
		accounts = append(accounts, account)
	}

	directory, err := core.NewDirectory(accounts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory: %w", err)
	}

	return directory, nil
}

func (s SeedStore) loadMovements(ctx context.Context, accountID int64) ([]float64, error) {
	query := `
		SELECT amount
		FROM movements
		WHERE account_id = ?
		ORDER BY seq
	`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var movements []float64
	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		movements = append(movements, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movements for account %d: %w", accountID, err)
	}

	return movements, nil
}
