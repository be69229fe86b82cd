package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// ActivityRepository persists audit events to the activity_events collection.
type ActivityRepository struct {
	db *mongo.Database
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{db: db}
}

// Insert appends one activity event to the audit collection.
func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	doc := bson.M{
		"actor_id":     event.ActorID,
		"role":         event.Role,
		"action":       event.Action,
		"entity_id":    event.EntityID,
		"timestamp":    event.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection("activity_events").InsertOne(ctx, doc)
	return err
}
