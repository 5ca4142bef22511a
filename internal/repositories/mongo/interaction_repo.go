package mongo

import (
	"context"
	"time"

	"github.com/yoockh/konselor/internal/models"
	"github.com/yoockh/konselor/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

type interactionRepo struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewInteractionRepo(db *mongo.Database) repositories.InteractionRepository {
	return &interactionRepo{
		col:      db.Collection(interactionsCollection),
		counters: db.Collection(countersCollection),
	}
}

func (r *interactionRepo) Insert(ctx context.Context, i *models.Interaction) error {
	id, err := nextID(ctx, r.counters, interactionsCollection)
	if err != nil {
		return err
	}
	i.ID = id
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now().UTC()
	}
	_, err = r.col.InsertOne(ctx, i)
	return err
}
