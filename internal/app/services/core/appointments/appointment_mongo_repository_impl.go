package appointments

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.findAppointments(ctx, bson.M{})
}

func (r *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findAppointments(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findAppointments(ctx, bson.M{"patientId": patientID})
}

func (r *AppointmentMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) findAppointments(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	for cursor.Next(ctx) {
		var appointment models.Appointment
		if err := cursor.Decode(&appointment); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		appointments = append(appointments, appointment)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
