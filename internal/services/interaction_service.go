package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/konselor/internal/models"
	"github.com/yoockh/konselor/internal/repositories"
	"github.com/yoockh/konselor/internal/repositories/postgres"
	"github.com/yoockh/konselor/internal/utils"
)

type InteractionService interface {
	Record(ctx context.Context, sessionID int64, featureTitle, userInput, aiOutput string) (*models.Interaction, error)
}

type interactionService struct {
	interactions repositories.InteractionRepository
	log          logrus.FieldLogger
}

func NewInteractionService(interactions repositories.InteractionRepository, log logrus.FieldLogger) InteractionService {
	return &interactionService{interactions: interactions, log: log}
}

// Record appends one row. The session id is not looked up first; an unknown
// id only fails if the store enforces the foreign key.
func (s *interactionService) Record(ctx context.Context, sessionID int64, featureTitle, userInput, aiOutput string) (*models.Interaction, error) {
	const op = "InteractionService.Record"

	row := &models.Interaction{
		SessionID:    sessionID,
		FeatureTitle: featureTitle,
		UserInput:    userInput,
		AIOutput:     aiOutput,
	}
	if err := s.interactions.Insert(ctx, row); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			s.log.WithFields(logrus.Fields{
				"op":         op,
				"session_id": sessionID,
			}).Warn("interaction references unknown session")
		}
		return nil, utils.E(utils.CodeStorage, op, "failed to record interaction", err)
	}
	return row, nil
}
