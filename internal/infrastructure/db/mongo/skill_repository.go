package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

const skillsCollection = "skills"

// SkillRepository implements ports.SkillRepository on MongoDB.
type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(skillsCollection)}
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = newID()
	}
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Skill
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SkillRepository) List(ctx context.Context, filter ports.ListSkillsFilter) ([]*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.OwnerID != "" {
		query["$or"] = bson.A{
			bson.M{"provider_id": filter.OwnerID},
			bson.M{"user_id": filter.OwnerID},
		}
	}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var skills []*domain.Skill
	if err := cur.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the list queries.
func (r *SkillRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
