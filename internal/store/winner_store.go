package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const (
	// Upsert semantics: at most one winner per match id, later submissions
	// replace earlier ones.
	upsertWinnerQuery = `
		INSERT INTO match_winners (id, winner_id) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET winner_id = excluded.winner_id`

	listWinnersQuery  = "SELECT id, winner_id FROM match_winners"
	clearWinnersQuery = "DELETE FROM match_winners"
)

type WinnerStore struct {
	db *sqlx.DB
}

func NewWinnerStore(db *sqlx.DB) *WinnerStore {
	return &WinnerStore{db: db}
}

type winnerRow struct {
	ID       string `db:"id"`
	WinnerID int64  `db:"winner_id"`
}

func (s *WinnerStore) UpsertWinner(ctx context.Context, matchID string, teamID int64) error {
	_, err := s.db.ExecContext(ctx, upsertWinnerQuery, matchID, teamID)
	return err
}

// ListWinners returns the complete match id to team id mapping as a single
// snapshot read.
func (s *WinnerStore) ListWinners(ctx context.Context) (map[string]int64, error) {
	var rows []winnerRow
	if err := s.db.SelectContext(ctx, &rows, listWinnersQuery); err != nil {
		return nil, err
	}

	winners := make(map[string]int64, len(rows))
	for _, row := range rows {
		winners[row.ID] = row.WinnerID
	}
	return winners, nil
}

func (s *WinnerStore) ClearWinners(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, clearWinnersQuery)
	return err
}
