package utils

import (
	"mime/multipart"
	"testing"

	"carebook-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_RegisterRoles(t *testing.T) {
	base := func(role string) *requests.Register {
		return &requests.Register{
			Name:     "Ravi Kumar",
			Email:    "ravi@example.com",
			Password: "supersecret",
			Role:     role,
		}
	}

	t.Run("known roles pass", func(t *testing.T) {
		for _, role := range []string{"patient", "doctor", "admin"} {
			assert.NoError(t, ValidateStruct(base(role)), "role %q must validate", role)
		}
	})

	t.Run("unknown role fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(base("superuser")))
	})
}

func TestValidateStruct_SlotLabels(t *testing.T) {
	day := func(slots ...string) *requests.AvailabilityDay {
		return &requests.AvailabilityDay{Date: "2100-01-15", Slots: slots}
	}

	t.Run("24h clock labels pass", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(day("00:00", "09:00", "14:30", "23:59")))
	})

	t.Run("out-of-range and malformed labels fail", func(t *testing.T) {
		for _, label := range []string{"24:00", "9:00", "09:60", "morning", "09.00"} {
			assert.Error(t, ValidateStruct(day(label)), "label %q must fail", label)
		}
	})
}

func TestValidateCalendarDate(t *testing.T) {
	assert.NoError(t, ValidateCalendarDate("2100-01-15"))
	assert.Error(t, ValidateCalendarDate("15-01-2100"))
	assert.Error(t, ValidateCalendarDate("2100-13-01"))
	assert.Error(t, ValidateCalendarDate(""))
}

func TestValidateImage(t *testing.T) {
	header := func(name string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{Filename: name, Size: size}
	}

	t.Run("accepted formats under the limit", func(t *testing.T) {
		assert.NoError(t, ValidateImage(header("avatar.jpg", 1024), 2))
		assert.NoError(t, ValidateImage(header("AVATAR.PNG", 1024), 2))
	})

	t.Run("oversized file", func(t *testing.T) {
		assert.Error(t, ValidateImage(header("avatar.jpg", 3*1024*1024), 2))
	})

	t.Run("unsupported format", func(t *testing.T) {
		assert.Error(t, ValidateImage(header("avatar.gif", 1024), 2))
	})

	t.Run("nil header", func(t *testing.T) {
		assert.Error(t, ValidateImage(nil, 2))
	})
}
