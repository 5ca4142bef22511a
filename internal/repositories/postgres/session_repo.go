package postgres

import (
	"context"

	"github.com/yoockh/konselor/internal/models"
	"github.com/yoockh/konselor/internal/repositories"
	"gorm.io/gorm"
)

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *models.Session) error {
	return r.db.WithContext(ctx).Omit("Interactions").Create(s).Error
}
