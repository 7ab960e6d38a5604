package responses

type AvailabilityDay struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type Doctor struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Specialty       string            `json:"specialty"`
	Qualification   string            `json:"qualification"`
	ConsultationFee float64           `json:"consultation_fee"`
	Bio             string            `json:"bio,omitempty"`
	ProfileImage    string            `json:"profile_image,omitempty"`
	Rating          float64           `json:"rating"`
	Reviews         int               `json:"reviews"`
	Availability    []AvailabilityDay `json:"availability,omitempty"`
	UpdatedAt       string            `json:"updated_at,omitempty"`
}

// CalendarCell is one cell of the booking calendar grid. Leading cells
// that pad the first week carry Blank=true and nothing else.
type CalendarCell struct {
	Blank      bool   `json:"blank,omitempty"`
	Date       string `json:"date,omitempty"`
	Day        int    `json:"day,omitempty"`
	Selectable bool   `json:"selectable,omitempty"`
}

type Calendar struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	MonthName string         `json:"month_name"`
	Weekdays  []string       `json:"weekdays"`
	Cells     []CalendarCell `json:"cells"`
}

type DaySlots struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type DoctorDashboard struct {
	Doctor       Doctor        `json:"doctor"`
	Appointments []Appointment `json:"appointments"`
}
