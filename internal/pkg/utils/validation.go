package utils

import (
	"carebook-service/internal/pkg/constvars"
	"errors"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// slot labels are 24h clock times like "09:00" or "14:30"
var slotLabelRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("slot_label", validateSlotLabel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RoleDoctor || value == constvars.RoleAdmin
}

func validateSlotLabel(fl validator.FieldLevel) bool {
	return slotLabelRegex.MatchString(fl.Field().String())
}

// ValidateCalendarDate checks the "YYYY-MM-DD" wire format used by
// availability entries and appointments.
func ValidateCalendarDate(value string) error {
	_, err := time.Parse(constvars.DateLayout, value)
	return err
}

func ValidateImage(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return errors.New("no file provided")
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return errors.New("file size exceeds the maximum limit")
	}

	validExtensions := []string{".jpg", ".jpeg", ".png"}
	for _, ext := range validExtensions {
		if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ext) {
			return nil
		}
	}
	return errors.New("invalid file format")
}
