package constvars

const (
	URLParamDoctorID      = "doctor_id"
	URLParamAppointmentID = "appointment_id"
	URLParamPatientID     = "patient_id"

	QueryParamYear      = "year"
	QueryParamMonth     = "month"
	QueryParamDate      = "date"
	QueryParamSpecialty = "specialty"
	QueryParamSearch    = "q"
)
