package doctors

import (
	"context"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	_, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.findDoctors(ctx, bson.M{})
}

func (r *DoctorMongoRepository) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	return r.findDoctors(ctx, bson.M{"specialty": specialty})
}

func (r *DoctorMongoRepository) Search(ctx context.Context, term string) ([]models.Doctor, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": term, "$options": "i"}},
			{"specialty": bson.M{"$regex": term, "$options": "i"}},
		},
	}
	return r.findDoctors(ctx, filter)
}

func (r *DoctorMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	filter := bson.M{"_id": doctor.ID}
	update := bson.M{"$set": bson.M{
		"name":            doctor.Name,
		"specialty":       doctor.Specialty,
		"qualification":   doctor.Qualification,
		"consultationFee": doctor.ConsultationFee,
		"bio":             doctor.Bio,
		"profileImage":    doctor.ProfileImage,
		"updatedAt":       doctor.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) UpdateAvailability(ctx context.Context, doctorID string, availability []models.AvailabilityDay) error {
	filter := bson.M{"_id": doctorID}
	update := bson.M{"$set": bson.M{
		"availability": availability,
		"updatedAt":    time.Now().UTC(),
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) DeleteByID(ctx context.Context, doctorID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": doctorID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// WatchByID opens a change stream scoped to one doctor document and emits
// the full post-image on every update until ctx is cancelled. The channel
// is closed when the stream ends.
func (r *DoctorMongoRepository) WatchByID(ctx context.Context, doctorID string) (<-chan *models.Doctor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"documentKey._id": doctorID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.Collection.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBWatchDocuments(err)
	}

	out := make(chan *models.Doctor)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var event struct {
				FullDocument *models.Doctor `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				return
			}
			if event.FullDocument == nil {
				continue
			}
			select {
			case out <- event.FullDocument:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (r *DoctorMongoRepository) findDoctors(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	for cursor.Next(ctx) {
		var doctor models.Doctor
		if err := cursor.Decode(&doctor); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		doctors = append(doctors, doctor)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}
