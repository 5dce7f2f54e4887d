package integration

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minibank/internal/sqlite"
)

type TestSuite struct {
	DB       *sql.DB
	DBPath   string
	Client   *sqlite.Client
	teardown func()
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_seed.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		BusyTimeout:  30 * time.Second,
	}

	client, err := sqlite.NewClient(config)
	require.NoError(t, err, "failed to create test client")

	schema := `
		CREATE TABLE IF NOT EXISTS accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner TEXT NOT NULL,
			pin INTEGER NOT NULL,
			interest_rate REAL NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS movements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			amount REAL NOT NULL,
			UNIQUE(account_id, seq)
		);
	`

	_, err = client.DB().Exec(schema)
	require.NoError(t, err, "failed to create schema")

	suite := &TestSuite{
		DB:     client.DB(),
		DBPath: dbPath,
		Client: client,
		teardown: func() {
			client.Close()
			os.Remove(dbPath)
		},
	}

	return suite
}

func (s *TestSuite) Teardown() {
	s.teardown()
}

func (s *TestSuite) SeedAccount(t *testing.T, owner string, pin int, rate float64, movements []float64) int64 {
	t.Helper()

	result, err := s.DB.Exec(
		"INSERT INTO accounts (owner, pin, interest_rate) VALUES (?, ?, ?)",
		owner, pin, rate,
	)
	require.NoError(t, err, "failed to seed account")

	id, err := result.LastInsertId()
	require.NoError(t, err, "failed to get inserted account ID")

	for seq, amount := range movements {
		_, err := s.DB.Exec(
			"INSERT INTO movements (account_id, seq, amount) VALUES (?, ?, ?)",
			id, seq, amount,
		)
		require.NoError(t, err, "failed to seed movement")
	}

	return id
}
