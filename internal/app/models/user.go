package models

import "go.mongodb.org/mongo-driver/bson"

// User is the account record behind every role. Role is written once at
// registration and never reassigned through any code path.
type User struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	TimeModel `bson:",inline"`
}

func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"name":      u.Name,
		"email":     u.Email,
		"password":  u.Password,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}
