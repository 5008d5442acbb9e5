package booking

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("booking not found")

type Repository interface {
	ListByUser(userID int) []Booking
	GetByID(id int) (Booking, error)
	Create(booking Booking) (Booking, error)
	Update(id int, booking Booking) (Booking, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings []Booking
	nextID   int
}

func NewInMemoryRepository(seed []Booking) *InMemoryRepository {
	repo := &InMemoryRepository{
		bookings: make([]Booking, 0, len(seed)),
		nextID:   1,
	}

	maxID := 0
	for _, booking := range seed {
		repo.bookings = append(repo.bookings, booking)
		if booking.ID > maxID {
			maxID = booking.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) ListByUser(userID int) []Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Booking, 0)
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			out = append(out, booking)
		}
	}
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, booking := range r.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}

	return Booking{}, ErrNotFound
}

func (r *InMemoryRepository) Create(booking Booking) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == 0 {
		booking.ID = r.nextID
		r.nextID++
	}

	r.bookings = append(r.bookings, booking)
	return booking, nil
}

func (r *InMemoryRepository) Update(id int, update Booking) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, booking := range r.bookings {
		if booking.ID == id {
			update.ID = id
			update.CreatedAt = booking.CreatedAt
			r.bookings[i] = update
			return update, nil
		}
	}

	return Booking{}, ErrNotFound
}
