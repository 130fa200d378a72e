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

type InProgressMongoRepository struct {
	Collection *mongo.Collection
}

func NewInProgressMongoRepository(db *mongo.Client, dbName string) contracts.InProgressAssessmentRepository {
	return &InProgressMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionInProgressAssessments),
	}
}

func (r *InProgressMongoRepository) Insert(ctx context.Context, assessment *models.InProgressAssessment) error {
	_, err := r.Collection.InsertOne(ctx, assessment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *InProgressMongoRepository) FindByID(ctx context.Context, id string) (*models.InProgressAssessment, error) {
	var assessment models.InProgressAssessment
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (r *InProgressMongoRepository) FindByOwner(ctx context.Context, owner string) ([]models.InProgressAssessment, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.InProgressAssessment, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}

func (r *InProgressMongoRepository) FindAll(ctx context.Context) ([]models.InProgressAssessment, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.InProgressAssessment, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}

func (r *InProgressMongoRepository) Update(ctx context.Context, assessment *models.InProgressAssessment) error {
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": assessment.ID}, assessment)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *InProgressMongoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
