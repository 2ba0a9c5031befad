package service

import (
	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/repository"
)

type CreateStrategyInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (in CreateStrategyInput) validate() error {
	f := fieldErrors{}
	requireLength(f, "title", in.Title, 1, 128)
	limitLength(f, "description", in.Description, 1000)
	return f.err()
}

type StrategyService struct {
	strategies repository.StrategyRepository
}

func NewStrategyService(strategies repository.StrategyRepository) *StrategyService {
	return &StrategyService{strategies: strategies}
}

func (s *StrategyService) Create(owner *domain.User, in CreateStrategyInput) (*domain.Strategy, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	strategy := &domain.Strategy{
		Title:       in.Title,
		Description: in.Description,
		UserID:      owner.ID,
	}
	if err := s.strategies.Create(strategy); err != nil {
		return nil, err
	}
	return strategy, nil
}

func (s *StrategyService) List(owner *domain.User) ([]domain.Strategy, error) {
	return s.strategies.ListByUserID(owner.ID)
}
