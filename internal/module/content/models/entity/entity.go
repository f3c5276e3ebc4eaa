package entity

const (
	TypePage   = "page"
	TypeBanner = "banner"
	TypeFAQ    = "faq"
	TypeBlog   = "blog"

	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Content struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Filter struct {
	Type   string
	Status string
	Limit  int
	Offset int
}
