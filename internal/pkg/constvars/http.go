package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEEventStream     = "text/event-stream"
	MIMEMultipartForm   = "multipart/form-data"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderCacheControl  = "Cache-Control"
	HeaderConnection    = "Connection"
	HeaderXRequestID    = "X-Request-ID"
)
