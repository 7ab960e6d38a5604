package models

// Patient mirrors the user record for patient-facing reads; _id is the
// owning user's ID.
type Patient struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	TimeModel `bson:",inline"`
}

// Admin is the back-office profile record created when an account
// registers with the admin role.
type Admin struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	TimeModel `bson:",inline"`
}
