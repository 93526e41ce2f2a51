package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cargo-relay/internal/entities"
	"cargo-relay/internal/repository"
	"cargo-relay/internal/service/profile"
)

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(Collection),
	}
}

// EnsureIndexes создает уникальный индекс по email: уникальность профиля
// обеспечивает Mongo, не приложение. Вызывается на старте, CreateOne
// идемпотентен для уже существующего индекса.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create profile email index: %w", err)
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, profileModifyEntity entities.ProfileModify) (string, error) {
	now := time.Now().UTC()
	doc := SetFromDomainModify(&profileModifyEntity)
	doc["_id"] = uuid.NewString()
	doc["picture_id"] = nil
	doc["picture_preview_url"] = nil
	doc["created_at"] = now
	doc["updated_at"] = now

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		// уникальный индекс по email
		if repository.IsDuplicateKeyError(err) {
			return "", profile.ErrConflict
		}
		return "", fmt.Errorf("unexpected profile repository create error: %w", err)
	}

	id, ok := result.InsertedID.(string)
	if !ok {
		return "", fmt.Errorf("unexpected profile repository create error: non-string id %v", result.InsertedID)
	}
	return id, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	var profileModel ProfileDB
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&profileModel)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected profile repository getbyemail error: %w", err)
	}

	return ToDomain(&profileModel), nil
}

func (r *Repository) Update(ctx context.Context, profileModifyEntity entities.ProfileModify) (*entities.Profile, error) {
	set := SetFromDomainModify(&profileModifyEntity)
	set["updated_at"] = time.Now().UTC()

	return r.findOneAndUpdate(ctx, *profileModifyEntity.ID, bson.M{"$set": set})
}

func (r *Repository) SetPicture(ctx context.Context, id string, pictureID *string, previewURL *string) (*entities.Profile, error) {
	set := bson.M{
		"picture_id":          pictureID,
		"picture_preview_url": previewURL,
		"updated_at":          time.Now().UTC(),
	}

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *Repository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*entities.Profile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profileModel ProfileDB
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&profileModel)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, profile.ErrProfileNotFound
		}
		if repository.IsDuplicateKeyError(err) {
			return nil, profile.ErrConflict
		}
		return nil, fmt.Errorf("unexpected profile repository update error: %w", err)
	}

	return ToDomain(&profileModel), nil
}
