package requests

type Register struct {
	Name     string `json:"name" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,role"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	// Role is optional; when set the stored role must match or the login
	// is rejected (role-checked variant).
	Role string `json:"role,omitempty" validate:"omitempty,role"`
}
