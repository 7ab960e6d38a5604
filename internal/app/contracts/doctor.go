package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
	"io"
	"mime/multipart"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error)
	Search(ctx context.Context, term string) ([]models.Doctor, error)
	Count(ctx context.Context) (int64, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	UpdateAvailability(ctx context.Context, doctorID string, availability []models.AvailabilityDay) error
	DeleteByID(ctx context.Context, doctorID string) error
	// WatchByID streams the full doctor document on every remote change
	// until ctx is done. It is the live-subscription read used by the
	// profile screen.
	WatchByID(ctx context.Context, doctorID string) (<-chan *models.Doctor, error)
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, specialty, search string) ([]responses.Doctor, error)
	ListSpecialties(ctx context.Context) ([]string, error)
	GetDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error)
	Onboard(ctx context.Context, session *models.Session, request *requests.OnboardDoctor) (*responses.Doctor, error)
	UpdateProfile(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error)
	UpdateAvailability(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateAvailability) error
	UploadProfileImage(ctx context.Context, session *models.Session, doctorID string, file io.Reader, fileHeader *multipart.FileHeader) (string, error)
	Dashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error)
	Watch(ctx context.Context, doctorID string) (<-chan *responses.Doctor, error)
}
