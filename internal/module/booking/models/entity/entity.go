package entity

const (
	TypeTour    = "tour"
	TypeService = "service"

	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var Statuses = []string{StatusPending, StatusContacted, StatusConfirmed, StatusCancelled, StatusCompleted}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              string  `json:"id"`
	BookingNumber   string  `json:"booking_number"`
	Type            string  `json:"type"`
	ItemID          string  `json:"item_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	StartDate       string  `json:"start_date"`
	TotalTravelers  int     `json:"total_travelers"`
	TotalAmount     float64 `json:"total_amount"`
	SpecialRequests string  `json:"special_requests"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// Item is the tour or service a booking points at.
type Item struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type Filter struct {
	Status string
	Type   string
	Search string
	Limit  int
	Offset int
}

type Stats struct {
	Total    int64
	ByStatus map[string]int64
	// Revenue sums confirmed and completed bookings.
	Revenue float64
}
