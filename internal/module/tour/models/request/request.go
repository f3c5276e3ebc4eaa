package request

type Tour struct {
	Title        string                 `json:"title" validate:"required,max=200"`
	Description  string                 `json:"description"`
	Location     string                 `json:"location" validate:"max=200"`
	Price        float64                `json:"price" validate:"gte=0"`
	Duration     string                 `json:"duration" validate:"max=100"`
	MaxTravelers int                    `json:"max_travelers" validate:"gte=0"`
	Difficulty   string                 `json:"difficulty" validate:"max=50"`
	Itinerary    map[string]interface{} `json:"itinerary"`
	Included     []string               `json:"included"`
	Excluded     []string               `json:"excluded"`
	Status       string                 `json:"status" validate:"omitempty,oneof=draft active inactive"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required,oneof=draft active inactive"`
}
