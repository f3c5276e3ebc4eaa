package request

type Register struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePreferences struct {
	Preferences map[string]interface{} `json:"preferences" validate:"required"`
}

type UpdateRole struct {
	Role string `json:"role" validate:"required,oneof=customer admin editor"`
}
