package models

// AvailabilityDay is one offered calendar date with its bookable time-slot
// labels. Slots are static offered times owned by the doctor, not
// decremented inventory; booking never mutates them.
type AvailabilityDay struct {
	Date  string   `bson:"date" json:"date"`
	Slots []string `bson:"slots" json:"slots"`
}

// Doctor is the public profile document. Its _id is the owning user's ID,
// so ownership checks are a straight string compare against the session.
type Doctor struct {
	ID              string            `bson:"_id"`
	Name            string            `bson:"name"`
	Email           string            `bson:"email"`
	Specialty       string            `bson:"specialty"`
	Qualification   string            `bson:"qualification"`
	ConsultationFee float64           `bson:"consultationFee"`
	Bio             string            `bson:"bio"`
	ProfileImage    string            `bson:"profileImage"`
	Availability    []AvailabilityDay `bson:"availability"`
	Rating          float64           `bson:"rating"`
	Reviews         int               `bson:"reviews"`
	TimeModel       `bson:",inline"`
}

// SlotsFor returns the stored slot list for a date, nil when the date is
// not offered.
func (d *Doctor) SlotsFor(date string) []string {
	for _, day := range d.Availability {
		if day.Date == date {
			return day.Slots
		}
	}
	return nil
}
