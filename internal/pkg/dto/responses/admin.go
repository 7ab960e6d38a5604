package responses

type Patient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminDashboard struct {
	DoctorCount      int64         `json:"doctor_count"`
	PatientCount     int64         `json:"patient_count"`
	AppointmentCount int64         `json:"appointment_count"`
	Doctors          []Doctor      `json:"doctors"`
	Patients         []Patient     `json:"patients"`
	Appointments     []Appointment `json:"appointments"`
}
