package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"numeric":    "must be a number",
	"gte":        "must be greater than or equal to %s",
	"lte":        "must be less than or equal to %s",
	"oneof":      "must be one of [%s]",
	"datetime":   "must be a calendar date formatted as %s",
	"role":       "must be one of 'patient', 'doctor' or 'admin'",
	"slot_label": "must be a time-slot label such as '09:00'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gte":      true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}
