package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

// Roles recognized by the service. A user's role is written once at
// registration and never reassigned afterwards.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionAdmins       = "admins"
	MongoCollectionAppointments = "appointments"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "cancelled"
)

// DateLayout is the calendar-date wire format used by doctor availability
// and appointments ("2025-06-10").
const DateLayout = "2006-01-02"

const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentCancelled = "appointment.cancelled"
)
