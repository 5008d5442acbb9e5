package restaurant

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Service) List() []Restaurant {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Restaurant, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(restaurant Restaurant) (Restaurant, error) {
	restaurant.CreatedAt = now()
	restaurant.UpdatedAt = ""
	return s.repo.Create(restaurant)
}

// Update merges the present payload fields into the stored record and stamps
// updatedAt.
func (s *Service) Update(id int, update Update) (Restaurant, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Restaurant{}, err
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.AmOpeningTime != nil {
		existing.AmOpeningTime = *update.AmOpeningTime
	}
	if update.PmOpeningTime != nil {
		existing.PmOpeningTime = *update.PmOpeningTime
	}
	if update.MaxGuest != nil {
		existing.MaxGuest = *update.MaxGuest
	}
	existing.UpdatedAt = now()

	return s.repo.Update(id, existing)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
