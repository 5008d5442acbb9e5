package food

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("food not found")

type Repository interface {
	List() []Food
	GetByID(id int) (Food, error)
	Create(food Food) (Food, error)
	Update(id int, food Food) (Food, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	foods  []Food
	nextID int
}

func NewInMemoryRepository(seed []Food) *InMemoryRepository {
	repo := &InMemoryRepository{
		foods:  make([]Food, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, food := range seed {
		repo.foods = append(repo.foods, food)
		if food.ID > maxID {
			maxID = food.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []Food {
	r.mu.RLock()
	defer r.mu.RUnlock()

	foods := make([]Food, len(r.foods))
	copy(foods, r.foods)
	return foods
}

func (r *InMemoryRepository) GetByID(id int) (Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, food := range r.foods {
		if food.ID == id {
			return food, nil
		}
	}

	return Food{}, ErrNotFound
}

func (r *InMemoryRepository) Create(food Food) (Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if food.ID == 0 {
		food.ID = r.nextID
		r.nextID++
	}

	r.foods = append(r.foods, food)
	return food, nil
}

func (r *InMemoryRepository) Update(id int, update Food) (Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, food := range r.foods {
		if food.ID == id {
			update.ID = id
			update.UUID = food.UUID
			update.CreatedAt = food.CreatedAt
			r.foods[i] = update
			return update, nil
		}
	}

	return Food{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, food := range r.foods {
		if food.ID == id {
			r.foods = append(r.foods[:i], r.foods[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
