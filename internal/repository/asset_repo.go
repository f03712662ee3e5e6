package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fathima-sithara/cloudee-backend/internal/models"
)

// AssetRepository is the asset-record surface of the metadata store. Delete
// calls return the deleted count: 0 means the record was already absent,
// which callers decide how to treat.
type AssetRepository interface {
	Insert(ctx context.Context, a *models.Asset) (string, error)
	FindByEmail(ctx context.Context, email string) ([]models.Asset, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	DeleteByPublicID(ctx context.Context, publicID string) (int64, error)
}

type mongoAssetRepo struct {
	col *mongo.Collection
}

func NewMongoAssetRepo(db *mongo.Database, collection string) AssetRepository {
	return &mongoAssetRepo{col: db.Collection(collection)}
}

func (r *mongoAssetRepo) Insert(ctx context.Context, a *models.Asset) (string, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	a.ID = id
	return id.Hex(), nil
}

func (r *mongoAssetRepo) FindByEmail(ctx context.Context, email string) ([]models.Asset, error) {
	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var assets []models.Asset
	if err := cur.All(ctx, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *mongoAssetRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoAssetRepo) DeleteByPublicID(ctx context.Context, publicID string) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"public_id": publicID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
