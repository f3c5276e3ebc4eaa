package request

type Service struct {
	Title       string                   `json:"title" validate:"required,max=200"`
	Description string                   `json:"description"`
	Category    string                   `json:"category" validate:"required,oneof=transport accommodation guide activity visa other"`
	Price       float64                  `json:"price" validate:"gte=0"`
	Itinerary   []map[string]interface{} `json:"itinerary"`
	Included    []string                 `json:"included"`
	Excluded    []string                 `json:"excluded"`
	Videos      []string                 `json:"videos" validate:"dive,url"`
	Featured    bool                     `json:"featured"`
	Status      string                   `json:"status" validate:"omitempty,oneof=draft active inactive"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required,oneof=draft active inactive"`
}
