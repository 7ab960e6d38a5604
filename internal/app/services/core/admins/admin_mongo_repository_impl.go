package admins

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdminMongoRepository(db *mongo.Client, dbName string) contracts.AdminRepository {
	return &AdminMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdmins),
	}
}

func (r *AdminMongoRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	_, err := r.Collection.InsertOne(ctx, admin)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AdminMongoRepository) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	var admin models.Admin
	err := r.Collection.FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}
