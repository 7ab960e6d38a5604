package responses

type CurrentUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Register struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type Login struct {
	Token string      `json:"token"`
	User  CurrentUser `json:"user"`
}
