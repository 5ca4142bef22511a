package repositories

import (
	"context"

	"github.com/yoockh/konselor/internal/models"
)

// SessionRepository persists sessions. Create fills in ID and CreatedAt.
type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
}

// InteractionRepository appends interaction rows. It does not check that
// the referenced session exists; that is left to the store's constraints.
type InteractionRepository interface {
	Insert(ctx context.Context, i *models.Interaction) error
}
