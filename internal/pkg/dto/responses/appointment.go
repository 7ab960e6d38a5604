package responses

type Appointment struct {
	ID              string  `json:"id"`
	DoctorID        string  `json:"doctor_id"`
	DoctorName      string  `json:"doctor_name"`
	DoctorSpecialty string  `json:"doctor_specialty"`
	PatientID       string  `json:"patient_id"`
	PatientName     string  `json:"patient_name"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Status          string  `json:"status"`
	Fee             float64 `json:"fee"`
	CreatedAt       string  `json:"created_at"`
}
