package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jei-ifri/showdown/internal/bracket"
	"github.com/jei-ifri/showdown/internal/middleware"
	"github.com/jei-ifri/showdown/internal/store"
)

type RegistrationService struct {
	teams *store.TeamStore
}

func NewRegistrationService(teams *store.TeamStore) *RegistrationService {
	return &RegistrationService{teams: teams}
}

type RegistrationInput struct {
	TeamName        string `json:"teamName"`
	Player1Pseudo   string `json:"player1Pseudo"`
	Player1Email    string `json:"player1Email"`
	Player1Whatsapp string `json:"player1Whatsapp"`
	Player2Pseudo   string `json:"player2Pseudo"`
	Player2Email    string `json:"player2Email"`
	Player2Whatsapp string `json:"player2Whatsapp"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (in RegistrationInput) validate() error {
	if len(strings.TrimSpace(in.TeamName)) < 3 {
		return fmt.Errorf("%w: team name must be at least 3 characters", bracket.ErrValidation)
	}

	players := []struct {
		label    string
		pseudo   string
		email    string
		whatsapp string
	}{
		{"player 1", in.Player1Pseudo, in.Player1Email, in.Player1Whatsapp},
		{"player 2", in.Player2Pseudo, in.Player2Email, in.Player2Whatsapp},
	}
	for _, p := range players {
		if len(strings.TrimSpace(p.pseudo)) < 2 {
			return fmt.Errorf("%w: %s pseudo is required", bracket.ErrValidation, p.label)
		}
		if !emailPattern.MatchString(p.email) {
			return fmt.Errorf("%w: %s email is invalid", bracket.ErrValidation, p.label)
		}
		if len(strings.TrimSpace(p.whatsapp)) < 8 {
			return fmt.Errorf("%w: %s needs a valid WhatsApp number", bracket.ErrValidation, p.label)
		}
	}
	return nil
}

// Register validates the submission and inserts the team. The 16-team cap is
// enforced atomically by the store.
func (s *RegistrationService) Register(ctx context.Context, in RegistrationInput) (*bracket.Team, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	team := &bracket.Team{
		TeamName:        strings.TrimSpace(in.TeamName),
		Player1Pseudo:   strings.TrimSpace(in.Player1Pseudo),
		Player1Email:    strings.TrimSpace(in.Player1Email),
		Player1Whatsapp: strings.TrimSpace(in.Player1Whatsapp),
		Player2Pseudo:   strings.TrimSpace(in.Player2Pseudo),
		Player2Email:    strings.TrimSpace(in.Player2Email),
		Player2Whatsapp: strings.TrimSpace(in.Player2Whatsapp),
	}
	if err := s.teams.InsertTeam(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *RegistrationService) ListTeams(ctx context.Context) ([]bracket.Team, error) {
	return s.teams.ListTeams(ctx)
}

// SetPaid flips the payment flag. Admin only; name and player fields stay
// immutable after creation.
func (s *RegistrationService) SetPaid(ctx context.Context, teamID int64, paid bool) error {
	if !middleware.IsAdmin(ctx) {
		return bracket.ErrUnauthorized
	}
	return s.teams.SetPaid(ctx, teamID, paid)
}

// DeleteTeam removes a registration. Any winner record pointing at the team
// is left in place; the resolver treats it as stale from then on.
func (s *RegistrationService) DeleteTeam(ctx context.Context, teamID int64) error {
	if !middleware.IsAdmin(ctx) {
		return bracket.ErrUnauthorized
	}
	return s.teams.DeleteTeam(ctx, teamID)
}
