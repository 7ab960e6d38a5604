package utils

import (
	"time"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/responses"
)

// ToDoctorSummaryResponse maps a doctor for list screens, without the
// availability payload.
func ToDoctorSummaryResponse(doctor *models.Doctor) responses.Doctor {
	return responses.Doctor{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialty:       doctor.Specialty,
		Qualification:   doctor.Qualification,
		ConsultationFee: doctor.ConsultationFee,
		Bio:             doctor.Bio,
		ProfileImage:    doctor.ProfileImage,
		Rating:          doctor.Rating,
		Reviews:         doctor.Reviews,
	}
}

// ToDoctorDetailResponse maps the full profile, availability and the
// updated_at stamp the edit form echoes back as its baseline.
func ToDoctorDetailResponse(doctor *models.Doctor) responses.Doctor {
	response := ToDoctorSummaryResponse(doctor)
	response.UpdatedAt = doctor.UpdatedAt.UTC().Format(time.RFC3339)
	response.Availability = make([]responses.AvailabilityDay, 0, len(doctor.Availability))
	for _, day := range doctor.Availability {
		response.Availability = append(response.Availability, responses.AvailabilityDay{
			Date:  day.Date,
			Slots: day.Slots,
		})
	}
	return response
}

func ToAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.DoctorName,
		DoctorSpecialty: appointment.DoctorSpecialty,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.PatientName,
		Date:            appointment.Date,
		Time:            appointment.Time,
		Status:          appointment.Status,
		Fee:             appointment.Fee,
		CreatedAt:       appointment.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToAppointmentResponses(appointments []models.Appointment) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, ToAppointmentResponse(&appointments[i]))
	}
	return result
}
