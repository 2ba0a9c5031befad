package service

import (
	"valorant-coach-service/internal/domain"
	"valorant-coach-service/internal/repository"
)

type CreatePracticeSessionInput struct {
	Title           string `json:"title"`
	FocusArea       string `json:"focus_area"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

func (in CreatePracticeSessionInput) validate() error {
	f := fieldErrors{}
	requireLength(f, "title", in.Title, 1, 128)
	requireLength(f, "focus_area", in.FocusArea, 1, 128)
	requireRange(f, "duration_minutes", in.DurationMinutes, 0, 600)
	limitLength(f, "notes", in.Notes, 1000)
	return f.err()
}

type PracticeSessionService struct {
	sessions repository.PracticeSessionRepository
}

func NewPracticeSessionService(sessions repository.PracticeSessionRepository) *PracticeSessionService {
	return &PracticeSessionService{sessions: sessions}
}

func (s *PracticeSessionService) Create(owner *domain.User, in CreatePracticeSessionInput) (*domain.PracticeSession, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	session := &domain.PracticeSession{
		Title:           in.Title,
		FocusArea:       in.FocusArea,
		DurationMinutes: in.DurationMinutes,
		Notes:           in.Notes,
		UserID:          owner.ID,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *PracticeSessionService) List(owner *domain.User) ([]domain.PracticeSession, error) {
	return s.sessions.ListByUserID(owner.ID)
}
