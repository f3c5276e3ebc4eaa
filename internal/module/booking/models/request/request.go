package request

type Booking struct {
	Type            string  `json:"type" validate:"required,oneof=tour service"`
	ItemID          string  `json:"item_id" validate:"required"`
	CustomerName    string  `json:"customer_name" validate:"required,max=200"`
	CustomerEmail   string  `json:"customer_email" validate:"required,email"`
	CustomerPhone   string  `json:"customer_phone" validate:"max=50"`
	StartDate       string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	TotalTravelers  int     `json:"total_travelers" validate:"omitempty,min=1,max=100"`
	TotalAmount     float64 `json:"total_amount" validate:"gte=0"`
	SpecialRequests string  `json:"special_requests" validate:"max=2000"`
}

// UpdateStatus is checked against the booking status list in the usecase.
type UpdateStatus struct {
	Status string `json:"status" validate:"required"`
}
