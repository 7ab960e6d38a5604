package requests

// OnboardDoctor completes a doctor's profile after registration. The
// profile document itself is created at registration; onboarding fills in
// the practice fields.
type OnboardDoctor struct {
	Specialty       string  `json:"specialty" validate:"required,min=2,max=80"`
	Qualification   string  `json:"qualification" validate:"required,min=2,max=120"`
	ConsultationFee float64 `json:"consultation_fee" validate:"required,gte=0"`
	Bio             string  `json:"bio" validate:"max=2000"`
	ProfileImage    string  `json:"profile_image,omitempty"`
}

type UpdateDoctorProfile struct {
	Name            string  `json:"name" validate:"required,min=2,max=80"`
	Specialty       string  `json:"specialty" validate:"required,min=2,max=80"`
	Qualification   string  `json:"qualification" validate:"required,min=2,max=120"`
	ConsultationFee float64 `json:"consultation_fee" validate:"required,gte=0"`
	Bio             string  `json:"bio" validate:"max=2000"`
	ProfileImage    string  `json:"profile_image,omitempty"`
	// EditBaseline is the updated_at the editor last loaded, RFC3339. When
	// set and older than the stored document, the update is rejected with a
	// conflict instead of silently overwriting the newer copy.
	EditBaseline string `json:"edit_baseline,omitempty"`
}

type AvailabilityDay struct {
	Date  string   `json:"date" validate:"required,datetime=2006-01-02"`
	Slots []string `json:"slots" validate:"required,min=1,dive,slot_label"`
}

type UpdateAvailability struct {
	Availability []AvailabilityDay `json:"availability" validate:"required,dive"`
}
