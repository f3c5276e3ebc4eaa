package response

import "travel-service/internal/module/review/models/entity"

type TourReviews struct {
	Reviews []entity.Review `json:"reviews"`
	Rating  entity.Rating   `json:"rating"`
}
