package response

import (
	"travel-service/internal/module/tour/models/entity"
	"travel-service/internal/pkg/jsoncol"
)

type Tour struct {
	ID           string                 `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Location     string                 `json:"location"`
	Price        float64                `json:"price"`
	Duration     string                 `json:"duration"`
	MaxTravelers int                    `json:"max_travelers"`
	Difficulty   string                 `json:"difficulty"`
	Images       []string               `json:"images"`
	Itinerary    map[string]interface{} `json:"itinerary"`
	Included     []string               `json:"included"`
	Excluded     []string               `json:"excluded"`
	Status       string                 `json:"status"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
}

type Stats struct {
	Total        int64   `json:"total"`
	Active       int64   `json:"active"`
	AveragePrice float64 `json:"average_price"`
}

func NewTour(t entity.Tour) Tour {
	var itinerary map[string]interface{}
	if t.Itinerary.Valid {
		itinerary = t.Itinerary.V
	}

	return Tour{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Location:     t.Location,
		Price:        t.Price,
		Duration:     t.Duration,
		MaxTravelers: t.MaxTravelers,
		Difficulty:   t.Difficulty,
		Images:       list(t.Images),
		Itinerary:    itinerary,
		Included:     list(t.Included),
		Excluded:     list(t.Excluded),
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func NewTours(tours []entity.Tour) []Tour {
	out := make([]Tour, 0, len(tours))
	for _, t := range tours {
		out = append(out, NewTour(t))
	}
	return out
}

func list(a jsoncol.Array[string]) []string {
	if a == nil {
		return []string{}
	}
	return a
}
