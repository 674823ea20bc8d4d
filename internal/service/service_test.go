package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jei-ifri/showdown/internal/bracket"
	"github.com/jei-ifri/showdown/internal/middleware"
	"github.com/jei-ifri/showdown/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	// A second pool connection would see a different empty memory database.
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

func setupServices(t *testing.T) (*RegistrationService, *BracketService, *sqlx.DB) {
	t.Helper()

	db := setupTestDB(t)
	t.Cleanup(func() { db.Close() })

	teamStore := store.NewTeamStore(db)
	winnerStore := store.NewWinnerStore(db)
	return NewRegistrationService(teamStore), NewBracketService(teamStore, winnerStore), db
}

func registrationInput(n int) RegistrationInput {
	return RegistrationInput{
		TeamName:        fmt.Sprintf("Team %d", n),
		Player1Pseudo:   fmt.Sprintf("player%da", n),
		Player1Email:    fmt.Sprintf("player%da@example.com", n),
		Player1Whatsapp: "+22990000001",
		Player2Pseudo:   fmt.Sprintf("player%db", n),
		Player2Email:    fmt.Sprintf("player%db@example.com", n),
		Player2Whatsapp: "+22990000002",
	}
}

// registerTeams registers n teams and returns them in registration order.
func registerTeams(t *testing.T, regs *RegistrationService, n int) []bracket.Team {
	t.Helper()

	ctx := context.Background()
	teams := make([]bracket.Team, 0, n)
	for i := 1; i <= n; i++ {
		team, err := regs.Register(ctx, registrationInput(i))
		require.NoError(t, err)
		teams = append(teams, *team)
	}
	return teams
}

func adminCtx() context.Context {
	return middleware.WithAdmin(context.Background())
}
