package category

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("category not found")

type Repository interface {
	List() []Category
	GetByID(id int) (Category, error)
	Create(category Category) (Category, error)
	Update(id int, category Category) (Category, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
	nextID     int
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	repo := &InMemoryRepository{
		categories: make([]Category, 0, len(seed)),
		nextID:     1,
	}

	maxID := 0
	for _, category := range seed {
		repo.categories = append(repo.categories, category)
		if category.ID > maxID {
			maxID = category.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]Category, len(r.categories))
	copy(categories, r.categories)
	return categories
}

func (r *InMemoryRepository) GetByID(id int) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.categories {
		if category.ID == id {
			return category, nil
		}
	}

	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Create(category Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == 0 {
		category.ID = r.nextID
		r.nextID++
	}

	r.categories = append(r.categories, category)
	return category, nil
}

func (r *InMemoryRepository) Update(id int, update Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, category := range r.categories {
		if category.ID == id {
			update.ID = id
			update.CreatedAt = category.CreatedAt
			r.categories[i] = update
			return update, nil
		}
	}

	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, category := range r.categories {
		if category.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}
