package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/yoockh/konselor/internal/models"
	"gorm.io/gorm"
)

// SQLSTATE raised by lib/pq when the referenced session is missing.
const pgForeignKeyViolation = "23503"

// Migrate creates the sessions and interactions tables (and the
// interactions.session_id foreign key) if they do not exist.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&models.Session{}, &models.Interaction{})
}

// IsForeignKeyViolation reports whether err is an insert rejected because
// the referenced session does not exist.
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == pgForeignKeyViolation
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
