package admin

import (
	"context"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IdentityMongoRepository is the Mongo-backed account directory behind the
// admin user-management operations.
type IdentityMongoRepository struct {
	Collection *mongo.Collection
}

func NewIdentityMongoRepository(db *mongo.Client, dbName string) contracts.IdentityDirectory {
	return &IdentityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *IdentityMongoRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *IdentityMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *IdentityMongoRepository) FindByStatus(ctx context.Context, status string) ([]models.User, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *IdentityMongoRepository) Insert(ctx context.Context, user *models.User) error {
	_, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *IdentityMongoRepository) Update(ctx context.Context, user *models.User) error {
	_, err := r.Collection.ReplaceOne(ctx, bson.M{"email": user.Email}, user)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *IdentityMongoRepository) Delete(ctx context.Context, email string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
