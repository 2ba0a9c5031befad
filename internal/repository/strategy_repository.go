package repository

import (
	"context"

	"gorm.io/gorm"

	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/observability"
)

type StrategyRepository interface {
	Create(strategy *domain.Strategy) error
	ListByUserID(userID uint) ([]domain.Strategy, error)
}

type GormStrategyRepository struct{ db *gorm.DB }

func NewStrategyRepository(db *gorm.DB) StrategyRepository {
	return &GormStrategyRepository{db: db}
}

func (r *GormStrategyRepository) Create(strategy *domain.Strategy) error {
	err := r.db.Create(strategy).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "strategy", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "strategy", "create", "success")
	return nil
}

func (r *GormStrategyRepository) ListByUserID(userID uint) ([]domain.Strategy, error) {
	var strategies []domain.Strategy
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&strategies).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "strategy", "list_by_user_id", "error")
		return strategies, err
	}
	observability.RecordRepositoryOperation(context.Background(), "strategy", "list_by_user_id", "success")
	return strategies, nil
}
