package entity

type Review struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	TourID    string `json:"tour_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`

	// filled by joins
	UserName  string `json:"user_name,omitempty"`
	TourTitle string `json:"tour_title,omitempty"`
}

type Filter struct {
	TourID string
	Limit  int
	Offset int
}

type Rating struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
