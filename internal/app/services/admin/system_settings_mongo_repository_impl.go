package admin

import (
	"context"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SystemSettingsMongoRepository struct {
	Collection *mongo.Collection
}

func NewSystemSettingsMongoRepository(db *mongo.Client, dbName string) contracts.SystemSettingsRepository {
	return &SystemSettingsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSystemSettings),
	}
}

func (r *SystemSettingsMongoRepository) FindAll(ctx context.Context) ([]models.SystemSetting, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	settings := make([]models.SystemSetting, 0)
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return settings, nil
}

func (r *SystemSettingsMongoRepository) Upsert(ctx context.Context, setting *models.SystemSetting) error {
	updateOptions := options.Replace().SetUpsert(true)
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"name": setting.Name}, setting, updateOptions)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
