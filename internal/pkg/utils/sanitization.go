package utils

import (
	"carebook-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(input *requests.Register) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeUpdateDoctorProfileRequest(input *requests.UpdateDoctorProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.Bio = strings.TrimSpace(input.Bio)
	input.ProfileImage = strings.TrimSpace(input.ProfileImage)
	input.EditBaseline = strings.TrimSpace(input.EditBaseline)
}

func SanitizeOnboardDoctorRequest(input *requests.OnboardDoctor) {
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.Bio = strings.TrimSpace(input.Bio)
	input.ProfileImage = strings.TrimSpace(input.ProfileImage)
}

func SanitizeUpdateAvailabilityRequest(input *requests.UpdateAvailability) {
	for i := range input.Availability {
		input.Availability[i].Date = strings.TrimSpace(input.Availability[i].Date)
		input.Availability[i].Slots = cleanWhiteSpaceFromEachStringOfAnArray(input.Availability[i].Slots)
	}
}

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}
