package response

import (
	booking "travel-service/internal/module/booking/models/response"
	review "travel-service/internal/module/review/models/entity"
	tour "travel-service/internal/module/tour/models/response"
)

type ServiceStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type Dashboard struct {
	Tours    tour.Stats    `json:"tours"`
	Services ServiceStats  `json:"services"`
	Bookings booking.Stats `json:"bookings"`
	Reviews  review.Rating `json:"reviews"`
	Users    int64         `json:"users"`
}
