package entity

import "travel-service/internal/pkg/jsoncol"

const (
	CategoryTransport     = "transport"
	CategoryAccommodation = "accommodation"
	CategoryGuide         = "guide"
	CategoryActivity      = "activity"
	CategoryVisa          = "visa"
	CategoryOther         = "other"

	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Step is one entry of a service itinerary. Its shape is free-form.
type Step map[string]interface{}

type Service struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Price       float64               `json:"price"`
	Itinerary   jsoncol.Array[Step]   `json:"itinerary"`
	Included    jsoncol.Array[string] `json:"included"`
	Excluded    jsoncol.Array[string] `json:"excluded"`
	Images      jsoncol.Array[string] `json:"images"`
	Videos      jsoncol.Array[string] `json:"videos"`
	Featured    jsoncol.Flag          `json:"featured"`
	Status      string                `json:"status"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

type Filter struct {
	Category string
	Status   string
	Featured *bool
	Search   string
	Limit    int
	Offset   int
}

type Category struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
