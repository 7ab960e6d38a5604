package constvars

const (
	UserCreatedSuccess        = "Account registered successfully"
	LoginSuccess              = "Logged in successfully"
	LogoutSuccess             = "Logged out successfully"
	CurrentUserSuccess        = "Current user fetched successfully"
	SpecialtiesSuccess        = "Specialties fetched successfully"
	DoctorListSuccess         = "Doctors fetched successfully"
	DoctorDetailSuccess       = "Doctor fetched successfully"
	DoctorCalendarSuccess     = "Calendar fetched successfully"
	DoctorSlotsSuccess        = "Time slots fetched successfully"
	DoctorOnboardedSuccess    = "Doctor profile created successfully"
	DoctorUpdatedSuccess      = "Profile updated successfully"
	AvailabilityUpdateSuccess = "Availability updated successfully"
	ProfileImageSuccess       = "Profile image uploaded successfully"
	DoctorDashboardSuccess    = "Doctor dashboard fetched successfully"
	AppointmentBookedSuccess  = "Appointment booked!"
	AppointmentCancelSuccess  = "Appointment cancelled successfully"
	PatientDashboardSuccess   = "Appointments fetched successfully"
	AdminDashboardSuccess     = "Admin dashboard fetched successfully"
	AdminListSuccess          = "Records fetched successfully"
	AdminDeleteSuccess        = "Record removed successfully"
)
