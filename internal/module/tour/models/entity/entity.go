package entity

import "travel-service/internal/pkg/jsoncol"

const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Itinerary is keyed by day label ("day1", "day2", ...).
type Itinerary map[string]interface{}

type Tour struct {
	ID           string                    `json:"id"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Location     string                    `json:"location"`
	Price        float64                   `json:"price"`
	Duration     string                    `json:"duration"`
	MaxTravelers int                       `json:"max_travelers"`
	Difficulty   string                    `json:"difficulty"`
	Images       jsoncol.Array[string]     `json:"images"`
	Itinerary    jsoncol.Object[Itinerary] `json:"itinerary"`
	Included     jsoncol.Array[string]     `json:"included"`
	Excluded     jsoncol.Array[string]     `json:"excluded"`
	Status       string                    `json:"status"`
	CreatedAt    string                    `json:"created_at"`
	UpdatedAt    string                    `json:"updated_at"`
}

type Filter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

type Stats struct {
	Total        int64
	Active       int64
	AveragePrice float64
}
