package service

import (
	"golang.org/x/sync/errgroup"

	"valorant-coach-service/internal/domain"
)

// Dashboard composes the owner's profile with all three resource
// collections. No cross-resource computation happens here; each list keeps
// its own created-at-descending order.
type Dashboard struct {
	User       *domain.User             `json:"user"`
	Matches    []domain.Match           `json:"matches"`
	Strategies []domain.Strategy        `json:"strategies"`
	Sessions   []domain.PracticeSession `json:"sessions"`
}

type DashboardService struct {
	matches    *MatchService
	sessions   *PracticeSessionService
	strategies *StrategyService
}

func NewDashboardService(matches *MatchService, sessions *PracticeSessionService, strategies *StrategyService) *DashboardService {
	return &DashboardService{matches: matches, sessions: sessions, strategies: strategies}
}

// Aggregate runs the three list queries concurrently; each is an
// independent single-owner read.
func (s *DashboardService) Aggregate(owner *domain.User) (*Dashboard, error) {
	dash := &Dashboard{User: owner}
	var g errgroup.Group
	g.Go(func() error {
		matches, err := s.matches.List(owner)
		if err != nil {
			return err
		}
		dash.Matches = matches
		return nil
	})
	g.Go(func() error {
		sessions, err := s.sessions.List(owner)
		if err != nil {
			return err
		}
		dash.Sessions = sessions
		return nil
	})
	g.Go(func() error {
		strategies, err := s.strategies.List(owner)
		if err != nil {
			return err
		}
		dash.Strategies = strategies
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if dash.Matches == nil {
		dash.Matches = []domain.Match{}
	}
	if dash.Sessions == nil {
		dash.Sessions = []domain.PracticeSession{}
	}
	if dash.Strategies == nil {
		dash.Strategies = []domain.Strategy{}
	}
	return dash, nil
}
