package services

import (
	"context"

	"github.com/yoockh/konselor/internal/models"
	"github.com/yoockh/konselor/internal/repositories"
	"github.com/yoockh/konselor/internal/utils"
)

type SessionService interface {
	Create(ctx context.Context, userName, ethnicGroup, educationLevel string) (*models.Session, error)
}

type sessionService struct {
	sessions repositories.SessionRepository
}

func NewSessionService(sessions repositories.SessionRepository) SessionService {
	return &sessionService{sessions: sessions}
}

// Create stores the values as given. Blank-to-default substitution is the
// router's job.
func (s *sessionService) Create(ctx context.Context, userName, ethnicGroup, educationLevel string) (*models.Session, error) {
	const op = "SessionService.Create"

	session := &models.Session{
		UserName:       userName,
		EthnicGroup:    ethnicGroup,
		EducationLevel: educationLevel,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, utils.E(utils.CodeStorage, op, "failed to create session", err)
	}
	return session, nil
}
