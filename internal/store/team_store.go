package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jei-ifri/showdown/internal/bracket"
	"github.com/jmoiron/sqlx"
)

const (
	// Conditional insert: the count check and the insert run as one statement,
	// so a concurrent registration can never push the roster past the cap.
	insertTeamQuery = `
		INSERT INTO teams (team_name, player1_pseudo, player1_email, player1_whatsapp,
		                   player2_pseudo, player2_email, player2_whatsapp, is_paid)
		SELECT ?, ?, ?, ?, ?, ?, ?, 0
		WHERE (SELECT COUNT(*) FROM teams) < ?`

	// Registration order decides pool membership; the id tiebreak keeps the
	// ordering total when two rows share a created_at second.
	listTeamsQuery = "SELECT * FROM teams ORDER BY created_at ASC, id ASC"

	getTeamQuery    = "SELECT * FROM teams WHERE id = ?"
	countTeamsQuery = "SELECT COUNT(*) FROM teams"
	setPaidQuery    = "UPDATE teams SET is_paid = ? WHERE id = ?"
	deleteTeamQuery = "DELETE FROM teams WHERE id = ?"
)

type TeamStore struct {
	db *sqlx.DB
}

func NewTeamStore(db *sqlx.DB) *TeamStore {
	return &TeamStore{db: db}
}

// InsertTeam persists a registration and fills in the assigned id and
// creation timestamp. Returns bracket.ErrTournamentFull once the cap is hit.
func (s *TeamStore) InsertTeam(ctx context.Context, team *bracket.Team) error {
	res, err := s.db.ExecContext(ctx, insertTeamQuery,
		team.TeamName,
		team.Player1Pseudo, team.Player1Email, team.Player1Whatsapp,
		team.Player2Pseudo, team.Player2Email, team.Player2Whatsapp,
		bracket.MaxTeams,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return bracket.ErrTournamentFull
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return s.db.GetContext(ctx, team, getTeamQuery, id)
}

func (s *TeamStore) ListTeams(ctx context.Context) ([]bracket.Team, error) {
	var teams []bracket.Team
	err := s.db.SelectContext(ctx, &teams, listTeamsQuery)
	return teams, err
}

func (s *TeamStore) CountTeams(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, countTeamsQuery)
	return count, err
}

func (s *TeamStore) GetTeam(ctx context.Context, id int64) (*bracket.Team, error) {
	var team bracket.Team
	err := s.db.GetContext(ctx, &team, getTeamQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, bracket.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamStore) SetPaid(ctx context.Context, id int64, paid bool) error {
	res, err := s.db.ExecContext(ctx, setPaidQuery, paid, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (s *TeamStore) DeleteTeam(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteTeamQuery, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return bracket.ErrNotFound
	}
	return nil
}
