package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorTypeKey    = "error_type"
	LoggingUserIDKey       = "user_id"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingAppointmentKey  = "appointment_id"
	LoggingEventKey        = "event"
	LoggingBusinessTypeKey = "business_event"
)
