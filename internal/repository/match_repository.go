package repository

import (
	"context"

	"gorm.io/gorm"

	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/observability"
)

type MatchRepository interface {
	Create(match *domain.Match) error
	ListByUserID(userID uint) ([]domain.Match, error)
}

type GormMatchRepository struct{ db *gorm.DB }

func NewMatchRepository(db *gorm.DB) MatchRepository { return &GormMatchRepository{db: db} }

func (r *GormMatchRepository) Create(match *domain.Match) error {
	err := r.db.Create(match).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "match", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "match", "create", "success")
	return nil
}

func (r *GormMatchRepository) ListByUserID(userID uint) ([]domain.Match, error) {
	var matches []domain.Match
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&matches).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "match", "list_by_user_id", "error")
		return matches, err
	}
	observability.RecordRepositoryOperation(context.Background(), "match", "list_by_user_id", "success")
	return matches, nil
}
