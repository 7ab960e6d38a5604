package constvars

// Client-facing messages. Kept deliberately vague for anything security
// sensitive; the paired Dev messages carry the detail for logs.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check again"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized, please log in"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "This email is already registered. Please log in instead"
	ErrClientRoleDoesNotMatch              = "This account is not registered for the selected role"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientDateAndTimeRequired           = "Please select a date and time"
	ErrClientSlotNotOffered                = "The selected time is not offered on that date"
	ErrClientDateNotSelectable             = "The selected date is not available for booking"
	ErrClientNotProfileOwner               = "You are not authorized to edit this profile"
	ErrClientProfileEditConflict           = "This profile changed while you were editing, please reload and try again"
	ErrClientInvalidImageFormat            = "Invalid image, only jpg, jpeg and png up to the configured size are accepted"
)

const (
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotParseMultipartForm = "Failed to parse multipart form"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevMissingRequestID         = "Request ID missing from request context"
	ErrDevMissingSessionData       = "Session data missing from request context"
	ErrDevServerDeadlineExceeded   = "Deadline exceeded while waiting for a downstream call"

	ErrDevAuthTokenMissing          = "Authorization token missing from request header"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "Failed to generate session JWT"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthInvalidSession        = "Session not found or expired in Redis"
	ErrDevInvalidCredentials        = "Email not registered or password mismatch"
	ErrDevEmailAlreadyExists        = "Email already exists in users collection"
	ErrDevRoleDoesNotMatch          = "Stored role does not match the requested role"
	ErrDevRoleNotAllowed            = "Session role is not allowed for this route"
	ErrDevFailedToHashPassword      = "Failed to hash password with bcrypt"

	ErrDevDBFailedToFindDocument    = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument  = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument  = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocument = "MongoDB failed to iterate documents"
	ErrDevDBFailedToCountDocument   = "MongoDB failed to count documents"
	ErrDevDBFailedToWatchDocument   = "MongoDB failed to open change stream"
	ErrDevDBStringNotObjectID       = "String is not a valid MongoDB ObjectID"

	ErrDevRedisStoreSession  = "Failed to store session in Redis"
	ErrDevRedisGetData       = "Failed to get data from Redis"
	ErrDevRedisDeleteData    = "Failed to delete data from Redis"
	ErrDevDoctorNotFound     = "Doctor document not found"
	ErrDevPatientNotFound    = "Patient document not found"
	ErrDevAppointmentMissing = "Appointment document not found"

	ErrDevDateNotSelectable    = "Requested date is not in availability or is in the past"
	ErrDevSlotNotOffered       = "Requested slot is not in the availability entry for the date"
	ErrDevDateAndTimeRequired  = "Booking request is missing date or time"
	ErrDevProfileEditConflict  = "Stored document is newer than the edit baseline"
	ErrDevNotProfileOwner      = "Session user does not own the target profile"
	ErrDevImageValidationFaild = "Profile image validation failed"

	ErrDevMinioCreateObject    = "Failed to put object into MinIO bucket"
	ErrDevEventPublishFailed   = "Failed to publish event to RabbitMQ"
	ErrDevEventChannelFailure  = "Failed to open RabbitMQ channel"
	ErrDevEventQueueDeclartion = "Failed to declare RabbitMQ queue"
)
