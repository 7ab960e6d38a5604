package models

import "time"

// Appointment denormalizes the doctor and patient names so list screens
// render without extra lookups. There is deliberately no uniqueness guard
// on (doctorId, date, time): two concurrent bookings of the same slot both
// land as independent documents.
type Appointment struct {
	ID              string    `bson:"_id,omitempty"`
	DoctorID        string    `bson:"doctorId"`
	DoctorName      string    `bson:"doctorName"`
	DoctorSpecialty string    `bson:"doctorSpecialty"`
	PatientID       string    `bson:"patientId"`
	PatientName     string    `bson:"patientName"`
	Date            string    `bson:"date"`
	Time            string    `bson:"time"`
	Status          string    `bson:"status"`
	Fee             float64   `bson:"fee"`
	CreatedAt       time.Time `bson:"createdAt"`
}
