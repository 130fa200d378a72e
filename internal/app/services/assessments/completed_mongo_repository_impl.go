package assessments

import (
	"context"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CompletedMongoRepository struct {
	Collection *mongo.Collection
}

func NewCompletedMongoRepository(db *mongo.Client, dbName string) contracts.CompletedAssessmentRepository {
	return &CompletedMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCompletedAssessments),
	}
}

func (r *CompletedMongoRepository) Insert(ctx context.Context, assessment *models.CompletedAssessment) error {
	_, err := r.Collection.InsertOne(ctx, assessment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *CompletedMongoRepository) FindByID(ctx context.Context, id string) (*models.CompletedAssessment, error) {
	var assessment models.CompletedAssessment
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (r *CompletedMongoRepository) FindByOwner(ctx context.Context, owner string) ([]models.CompletedAssessment, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.CompletedAssessment, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}

func (r *CompletedMongoRepository) FindAll(ctx context.Context) ([]models.CompletedAssessment, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.CompletedAssessment, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}
