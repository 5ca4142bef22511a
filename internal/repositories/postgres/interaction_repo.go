package postgres

import (
	"context"

	"github.com/yoockh/konselor/internal/models"
	"github.com/yoockh/konselor/internal/repositories"
	"gorm.io/gorm"
)

type interactionRepo struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) repositories.InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) Insert(ctx context.Context, i *models.Interaction) error {
	return r.db.WithContext(ctx).Create(i).Error
}
