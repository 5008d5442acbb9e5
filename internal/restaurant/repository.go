package restaurant

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("restaurant not found")

type Repository interface {
	List() []Restaurant
	GetByID(id int) (Restaurant, error)
	Create(restaurant Restaurant) (Restaurant, error)
	Update(id int, restaurant Restaurant) (Restaurant, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants []Restaurant
	nextID      int
}

func NewInMemoryRepository(seed []Restaurant) *InMemoryRepository {
	repo := &InMemoryRepository{
		restaurants: make([]Restaurant, 0, len(seed)),
		nextID:      1,
	}

	maxID := 0
	for _, restaurant := range seed {
		repo.restaurants = append(repo.restaurants, restaurant)
		if restaurant.ID > maxID {
			maxID = restaurant.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurants := make([]Restaurant, len(r.restaurants))
	copy(restaurants, r.restaurants)
	return restaurants
}

func (r *InMemoryRepository) GetByID(id int) (Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, restaurant := range r.restaurants {
		if restaurant.ID == id {
			return restaurant, nil
		}
	}

	return Restaurant{}, ErrNotFound
}

func (r *InMemoryRepository) Create(restaurant Restaurant) (Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if restaurant.ID == 0 {
		restaurant.ID = r.nextID
		r.nextID++
	}

	r.restaurants = append(r.restaurants, restaurant)
	return restaurant, nil
}

func (r *InMemoryRepository) Update(id int, update Restaurant) (Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, restaurant := range r.restaurants {
		if restaurant.ID == id {
			update.ID = id
			update.CreatedAt = restaurant.CreatedAt
			r.restaurants[i] = update
			return update, nil
		}
	}

	return Restaurant{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, restaurant := range r.restaurants {
		if restaurant.ID == id {
			r.restaurants = append(r.restaurants[:i], r.restaurants[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
