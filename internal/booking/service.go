package booking

import (
	"errors"
	"time"

	"restaurant-backend/internal/restaurant"
)

var (
	ErrInvalidGuests      = errors.New("guest count exceeds restaurant capacity")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// RestaurantFinder is the slice of the restaurant service bookings need.
type RestaurantFinder interface {
	GetByID(id int) (restaurant.Restaurant, error)
}

type Service struct {
	repo        Repository
	restaurants RestaurantFinder
}

func NewService(repo Repository, restaurants RestaurantFinder) *Service {
	return &Service{repo: repo, restaurants: restaurants}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Service) ListByUser(userID int) []Booking {
	return s.repo.ListByUser(userID)
}

// Create books a table for userID. The party must fit the restaurant's
// capacity.
func (s *Service) Create(userID int, booking Booking) (Booking, error) {
	target, err := s.restaurants.GetByID(booking.RestaurantID)
	if err != nil {
		return Booking{}, ErrRestaurantNotFound
	}
	if booking.Guests < 1 || booking.Guests > target.MaxGuest {
		return Booking{}, ErrInvalidGuests
	}

	booking.UserID = userID
	booking.Status = StatusPending
	booking.CreatedAt = now()
	booking.UpdatedAt = ""

	return s.repo.Create(booking)
}

// Cancel marks one of userID's bookings cancelled. Bookings of other users
// are reported as not found, not as forbidden.
func (s *Service) Cancel(userID, id int) error {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return ErrNotFound
	}

	booking.Status = StatusCancelled
	booking.UpdatedAt = now()
	_, err = s.repo.Update(id, booking)
	return err
}
