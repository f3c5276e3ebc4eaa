package response

import "travel-service/internal/module/user/models/entity"

// User is the public view of a user row; the password hash never leaves the
// service.
type User struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Role        string                 `json:"role"`
	Preferences map[string]interface{} `json:"preferences"`
	CreatedAt   string                 `json:"created_at"`
}

type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func NewUser(u entity.User) User {
	prefs := map[string]interface{}(u.Preferences.V)
	if prefs == nil {
		prefs = map[string]interface{}{}
	}
	return User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Preferences: prefs,
		CreatedAt:   u.CreatedAt,
	}
}

func NewUsers(list []entity.User) []User {
	out := make([]User, 0, len(list))
	for _, u := range list {
		out = append(out, NewUser(u))
	}
	return out
}
