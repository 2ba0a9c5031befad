package service

import (
	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/repository"
)

type CreateMatchInput struct {
	Map   string `json:"map"`
	Agent string `json:"agent"`
	Score int    `json:"score"`
	Notes string `json:"notes"`
}

func (in CreateMatchInput) validate() error {
	f := fieldErrors{}
	requireLength(f, "map", in.Map, 1, 100)
	requireLength(f, "agent", in.Agent, 1, 50)
	requireRange(f, "score", in.Score, 0, 10)
	limitLength(f, "notes", in.Notes, 500)
	return f.err()
}

type MatchService struct {
	matches repository.MatchRepository
}

func NewMatchService(matches repository.MatchRepository) *MatchService {
	return &MatchService{matches: matches}
}

// Create persists a match for owner. The owner id comes from the resolved
// identity, never from the payload.
func (s *MatchService) Create(owner *domain.User, in CreateMatchInput) (*domain.Match, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	match := &domain.Match{
		Map:    in.Map,
		Agent:  in.Agent,
		Score:  in.Score,
		Notes:  in.Notes,
		UserID: owner.ID,
	}
	if err := s.matches.Create(match); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *MatchService) List(owner *domain.User) ([]domain.Match, error) {
	return s.matches.ListByUserID(owner.ID)
}
