package entity

import "travel-service/internal/pkg/jsoncol"

type Preferences map[string]interface{}

type User struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Email       string                      `json:"email"`
	Password    string                      `json:"password"`
	Role        string                      `json:"role"`
	Preferences jsoncol.Object[Preferences] `json:"preferences"`
	CreatedAt   string                      `json:"created_at"`
	UpdatedAt   string                      `json:"updated_at"`
}

type Filter struct {
	Role   string
	Search string
	Limit  int
	Offset int
}
