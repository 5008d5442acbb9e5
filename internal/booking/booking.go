package booking

// Booking reserves a table at a restaurant for the authenticated user.
type Booking struct {
	ID           int    `json:"id"`
	UserID       int    `json:"userId"`
	RestaurantID int    `json:"restaurantId"`
	Guests       int    `json:"guests"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

const (
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)
