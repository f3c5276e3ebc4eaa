package response

import (
	"travel-service/internal/module/service/models/entity"
	"travel-service/internal/pkg/jsoncol"
)

type Service struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Category    string                   `json:"category"`
	Price       float64                  `json:"price"`
	Itinerary   []map[string]interface{} `json:"itinerary"`
	Included    []string                 `json:"included"`
	Excluded    []string                 `json:"excluded"`
	Images      []string                 `json:"images"`
	Videos      []string                 `json:"videos"`
	Featured    bool                     `json:"featured"`
	Status      string                   `json:"status"`
	CreatedAt   string                   `json:"created_at"`
	UpdatedAt   string                   `json:"updated_at"`
}

func NewService(s entity.Service) Service {
	itinerary := make([]map[string]interface{}, 0, len(s.Itinerary))
	for _, step := range s.Itinerary {
		itinerary = append(itinerary, step)
	}

	return Service{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Price:       s.Price,
		Itinerary:   itinerary,
		Included:    list(s.Included),
		Excluded:    list(s.Excluded),
		Images:      list(s.Images),
		Videos:      list(s.Videos),
		Featured:    bool(s.Featured),
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func NewServices(services []entity.Service) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		out = append(out, NewService(s))
	}
	return out
}

func list(a jsoncol.Array[string]) []string {
	if a == nil {
		return []string{}
	}
	return a
}
