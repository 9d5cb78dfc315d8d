package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	Role           string             `bson:"role"`
	ProfilePicture string             `bson:"profile_picture,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
}

// UserRepo implementación de UserRepository sobre la colección users.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el adaptador.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{coll: s.Collection(CollectionUsers)}
}

// Create inserta el usuario; una violación del índice único es domain.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	res, err := r.coll.InsertOne(ctx, userDocument{
		Email:          user.Email,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

// FindByEmail busca por email exacto (ya normalizado por el caso de uso).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &entity.User{
		ID:             doc.ID.Hex(),
		Email:          doc.Email,
		Role:           doc.Role,
		ProfilePicture: doc.ProfilePicture,
		CreatedAt:      doc.CreatedAt,
	}, nil
}

// UpdateRole asigna el rol y devuelve MatchedCount.
func (r *UserRepo) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, fmt.Errorf("update user role: %w", err)
	}
	return res.MatchedCount, nil
}
