package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

const usersCollection = "users"

// AuthRepository implements ports.AuthRepository on MongoDB.
// Account uniqueness is enforced by the unique email index; a duplicate
// insert surfaces as domain.ErrUserExists.
type AuthRepository struct {
	coll *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *AuthRepository {
	return &AuthRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           string `bson:"_id"`
	Role         string `bson:"role"`
	ProviderType string `bson:"provider_type,omitempty"`
	FirstName    string `bson:"first_name"`
	LastName     string `bson:"last_name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Mobile       string `bson:"mobile"`

	CompanyName            string `bson:"company_name,omitempty"`
	BusinessTaxNumber      string `bson:"business_tax_number,omitempty"`
	RepresentativeFullName string `bson:"representative_full_name,omitempty"`
	PhoneNumber            string `bson:"phone_number,omitempty"`

	AddressStreet   string `bson:"address_street"`
	AddressCity     string `bson:"address_city"`
	AddressState    string `bson:"address_state"`
	AddressPostCode string `bson:"address_post_code"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toUserDoc(user)
	if doc.ID == "" {
		doc.ID = newID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := doc.toDomain()
	return created, nil
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique email index backing ErrUserExists.
func (r *AuthRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:                     u.ID,
		Role:                   u.Role,
		ProviderType:           u.ProviderType,
		FirstName:              u.FirstName,
		LastName:               u.LastName,
		Email:                  u.Email,
		PasswordHash:           u.PasswordHash,
		Mobile:                 u.Mobile,
		CompanyName:            u.CompanyName,
		BusinessTaxNumber:      u.BusinessTaxNumber,
		RepresentativeFullName: u.RepresentativeFullName,
		PhoneNumber:            u.PhoneNumber,
		AddressStreet:          u.AddressStreet,
		AddressCity:            u.AddressCity,
		AddressState:           u.AddressState,
		AddressPostCode:        u.AddressPostCode,
		CreatedAt:              u.CreatedAt,
		UpdatedAt:              u.UpdatedAt,
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:                     d.ID,
		Role:                   d.Role,
		ProviderType:           d.ProviderType,
		FirstName:              d.FirstName,
		LastName:               d.LastName,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		Mobile:                 d.Mobile,
		CompanyName:            d.CompanyName,
		BusinessTaxNumber:      d.BusinessTaxNumber,
		RepresentativeFullName: d.RepresentativeFullName,
		PhoneNumber:            d.PhoneNumber,
		AddressStreet:          d.AddressStreet,
		AddressCity:            d.AddressCity,
		AddressState:           d.AddressState,
		AddressPostCode:        d.AddressPostCode,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}
