package service

import (
	"context"
	"fmt"

	"github.com/jei-ifri/showdown/internal/bracket"
	"github.com/jei-ifri/showdown/internal/middleware"
	"github.com/jei-ifri/showdown/internal/store"
	"golang.org/x/sync/errgroup"
)

// BracketService derives the bracket view from stored teams and winners.
// Nothing about advancement is persisted; every read recomputes the bracket
// from a fresh snapshot so roster changes are reflected immediately.
type BracketService struct {
	teams   *store.TeamStore
	winners *store.WinnerStore
}

func NewBracketService(teams *store.TeamStore, winners *store.WinnerStore) *BracketService {
	return &BracketService{teams: teams, winners: winners}
}

func (s *BracketService) snapshot(ctx context.Context) (bracket.Snapshot, error) {
	var (
		teams   []bracket.Team
		winners map[string]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teams.ListTeams(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		winners, err = s.winners.ListWinners(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return bracket.Snapshot{}, err
	}

	return bracket.Snapshot{Teams: teams, Winners: winners}, nil
}

// GetPools returns the four pools in registration order.
func (s *BracketService) GetPools(ctx context.Context) ([bracket.PoolCount][]bracket.Team, error) {
	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		return [bracket.PoolCount][]bracket.Team{}, err
	}
	return bracket.SplitPools(teams), nil
}

// ResolveMatch computes the current occupants of one bracket slot.
func (s *BracketService) ResolveMatch(ctx context.Context, matchID string) (bracket.Slots, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return bracket.Slots{}, err
	}

	slots, ok := snap.ResolveMatch(matchID)
	if !ok {
		return bracket.Slots{}, fmt.Errorf("%w: unknown match %q", bracket.ErrNotFound, matchID)
	}
	return slots, nil
}

// GetChampion resolves the grand final winner, nil while undecided.
func (s *BracketService) GetChampion(ctx context.Context) (*bracket.Team, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Champion(), nil
}

// ListWinners exposes the raw winner map for the bracket view.
func (s *BracketService) ListWinners(ctx context.Context) (map[string]int64, error) {
	return s.winners.ListWinners(ctx)
}

// RecordWinner designates a match winner. Admin only. The winner must be one
// of the match's currently resolved sides, which also guarantees the team
// exists; anything else is rejected.
func (s *BracketService) RecordWinner(ctx context.Context, matchID string, teamID int64) error {
	if !middleware.IsAdmin(ctx) {
		return bracket.ErrUnauthorized
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return err
	}

	slots, ok := snap.ResolveMatch(matchID)
	if !ok {
		return fmt.Errorf("%w: unknown match %q", bracket.ErrNotFound, matchID)
	}
	if !sideHasTeam(slots, teamID) {
		return fmt.Errorf("%w: team %d is not on either side of %s", bracket.ErrValidation, teamID, matchID)
	}

	return s.winners.UpsertWinner(ctx, matchID, teamID)
}

// ResetBracket erases every recorded winner. Admin only. There is no
// single-match retraction; the whole bracket resets together.
func (s *BracketService) ResetBracket(ctx context.Context) error {
	if !middleware.IsAdmin(ctx) {
		return bracket.ErrUnauthorized
	}
	return s.winners.ClearWinners(ctx)
}

func sideHasTeam(slots bracket.Slots, teamID int64) bool {
	if slots.Side1 != nil && slots.Side1.ID == teamID {
		return true
	}
	return slots.Side2 != nil && slots.Side2.ID == teamID
}
