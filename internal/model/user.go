package model

// User is the single operator identity held by the session gate and
// persisted to the "user" store slot.
type User struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
