package patients

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	_, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) DeleteByID(ctx context.Context, patientID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": patientID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
