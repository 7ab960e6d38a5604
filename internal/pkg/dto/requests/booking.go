package requests

// BookAppointment is the confirm action of the booking form. DoctorID is
// taken from the URL, the patient from the session.
type BookAppointment struct {
	DoctorID string `json:"-"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}
