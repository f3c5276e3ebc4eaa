package request

type Content struct {
	Type    string `json:"type" validate:"required,oneof=page banner faq blog"`
	Title   string `json:"title" validate:"required,max=200"`
	Slug    string `json:"slug" validate:"omitempty,max=200"`
	Content string `json:"content"`
	Status  string `json:"status" validate:"omitempty,oneof=draft published"`
}
