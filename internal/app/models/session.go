package models

// Session is the document stored in Redis under the session ID carried by
// the JWT. Role here is a snapshot from login time; route guards re-resolve
// the role from the users collection on every request.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
