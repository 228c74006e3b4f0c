package model

import "time"

// Patient keeps the camelCase JSON keys the store slots were written with,
// so state from earlier deployments loads unchanged.
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age,omitempty"`
	Gender    string    `json:"gender"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreatePatientRequest struct {
	Name   string `json:"name" binding:"required"`
	Age    int    `json:"age" binding:"omitempty,gte=0"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
	Email  string `json:"email" binding:"omitempty,email"`
	Notes  string `json:"notes"`
}

// UpdatePatientRequest merges into an existing record; nil fields are left
// untouched. ID and CreatedAt are immutable.
type UpdatePatientRequest struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age" binding:"omitempty,gte=0"`
	Gender *string `json:"gender"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Notes  *string `json:"notes"`
}
