package repository

import (
	"context"

	"gorm.io/gorm"

	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/observability"
)

type PracticeSessionRepository interface {
	Create(session *domain.PracticeSession) error
	ListByUserID(userID uint) ([]domain.PracticeSession, error)
}

type GormPracticeSessionRepository struct{ db *gorm.DB }

func NewPracticeSessionRepository(db *gorm.DB) PracticeSessionRepository {
	return &GormPracticeSessionRepository{db: db}
}

func (r *GormPracticeSessionRepository) Create(session *domain.PracticeSession) error {
	err := r.db.Create(session).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "practice_session", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "practice_session", "create", "success")
	return nil
}

func (r *GormPracticeSessionRepository) ListByUserID(userID uint) ([]domain.PracticeSession, error) {
	var sessions []domain.PracticeSession
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "practice_session", "list_by_user_id", "error")
		return sessions, err
	}
	observability.RecordRepositoryOperation(context.Background(), "practice_session", "list_by_user_id", "success")
	return sessions, nil
}
