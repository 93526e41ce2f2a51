package packages

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
	"cargo-relay/internal/service/packages"
)

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(Collection),
	}
}

func (r *Repository) Create(ctx context.Context, packageModifyEntity entities.PackageModify) (string, error) {
	now := time.Now().UTC()
	doc := SetFromDomainModify(&packageModifyEntity)
	doc["_id"] = uuid.NewString()
	doc["created_at"] = now
	doc["updated_at"] = now

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if repository.IsDuplicateKeyError(err) {
			return "", packages.ErrConflict
		}
		return "", fmt.Errorf("unexpected package repository create error: %w", err)
	}

	id, ok := result.InsertedID.(string)
	if !ok {
		return "", fmt.Errorf("unexpected package repository create error: non-string id %v", result.InsertedID)
	}
	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Package, error) {
	var packageModel PackageDB
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&packageModel)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, packages.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected package repository getbyid error: %w", err)
	}

	return ToDomain(&packageModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	// фильтры конъюнктивные, как и query-предикаты стора
	mongoFilter := bson.M{}
	if filter.Status != nil {
		mongoFilter["status"] = filter.Status.String()
	}
	if filter.SenderID != nil {
		mongoFilter["sender_id"] = *filter.SenderID
	}
	if filter.DeliverID != nil {
		mongoFilter["deliver_id"] = *filter.DeliverID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository getall error: %w", err)
	}
	defer cursor.Close(ctx)

	var packageModels []PackageDB
	if err := cursor.All(ctx, &packageModels); err != nil {
		return nil, fmt.Errorf("unexpected package repository getall error: %w", err)
	}

	return ToDomainList(packageModels), nil
}

func (r *Repository) Update(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	set := SetFromDomainModify(&packageModifyEntity)
	set["updated_at"] = time.Now().UTC()

	return r.findOneAndUpdate(ctx, *packageModifyEntity.ID, bson.M{"$set": set})
}

func (r *Repository) UpdateImages(ctx context.Context, id string, imagesIDs []string) (*entities.Package, error) {
	set := bson.M{
		"images_ids": imagesIDs,
		"updated_at": time.Now().UTC(),
	}

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *Repository) AssignCourier(ctx context.Context, id string, courierID string) (*entities.Package, error) {
	set := bson.M{
		"status":     entities.PackageInTransit.String(),
		"deliver_id": courierID,
		"updated_at": time.Now().UTC(),
	}

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *Repository) UnassignCourier(ctx context.Context, id string) (*entities.Package, error) {
	set := bson.M{
		"status":     entities.PackagePending.String(),
		"deliver_id": nil,
		"updated_at": time.Now().UTC(),
	}

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("unexpected package repository delete error: %w", err)
	}
	if result.DeletedCount == 0 {
		return packages.ErrPackageNotFound
	}
	return nil
}

func (r *Repository) CountByStatus(ctx context.Context, status entities.PackageStatusType) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status.String()})
	if err != nil {
		return 0, fmt.Errorf("unexpected package repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*entities.Package, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var packageModel PackageDB
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&packageModel)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, packages.ErrPackageNotFound
		}
		if repository.IsDuplicateKeyError(err) {
			return nil, packages.ErrConflict
		}
		return nil, fmt.Errorf("unexpected package repository update error: %w", err)
	}

	return ToDomain(&packageModel), nil
}
