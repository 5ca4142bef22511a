package mongo

import (
	"context"
	"time"

	"github.com/yoockh/konselor/internal/models"
	"github.com/yoockh/konselor/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	sessionsCollection     = "sessions"
	interactionsCollection = "interactions"
	countersCollection     = "counters"
)

type sessionRepo struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) repositories.SessionRepository {
	return &sessionRepo{
		col:      db.Collection(sessionsCollection),
		counters: db.Collection(countersCollection),
	}
}

func (r *sessionRepo) Create(ctx context.Context, s *models.Session) error {
	id, err := nextID(ctx, r.counters, sessionsCollection)
	if err != nil {
		return err
	}
	s.ID = id
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err = r.col.InsertOne(ctx, s)
	return err
}

// nextID hands out integer ids from a per-collection counter document.
// $inc on a single document is atomic, so concurrent callers never share an id.
func nextID(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	return doc.Seq, err
}
