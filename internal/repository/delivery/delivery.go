package delivery

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
	"cargo-relay/internal/service/delivery"
)

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(Collection),
	}
}

// EnsureIndexes создает уникальный индекс по package_id: одна заявка на
// посылку. Вызывается на старте, CreateOne идемпотентен для уже
// существующего индекса.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "package_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create delivery package_id index: %w", err)
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	doc := SetFromDomainModify(&deliveryModifyEntity)
	doc["_id"] = uuid.NewString()
	doc["created_at"] = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		// уникальный индекс по package_id: одна заявка на посылку
		if repository.IsDuplicateKeyError(err) {
			return nil, delivery.ErrConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	id, ok := result.InsertedID.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected delivery repository create error: non-string id %v", result.InsertedID)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	var deliveryModel DeliveryDB
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&deliveryModel)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) GetByPackageID(ctx context.Context, packageID string) (*entities.Delivery, error) {
	var deliveryModel DeliveryDB
	err := r.collection.FindOne(ctx, bson.M{"package_id": packageID}).Decode(&deliveryModel)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbypackageid error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	set := SetFromDomainModify(&deliveryModifyEntity)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var deliveryModel DeliveryDB
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": *deliveryModifyEntity.ID},
		bson.M{"$set": set},
		opts,
	).Decode(&deliveryModel)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, delivery.ErrDeliveryNotFound
		}
		if repository.IsDuplicateKeyError(err) {
			return nil, delivery.ErrConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}
	if result.DeletedCount == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	return count, nil
}
