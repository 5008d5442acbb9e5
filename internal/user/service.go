package user

import (
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// normalizeEmail lowercases the login identifier so uniqueness and lookup
// are case-insensitive everywhere.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Service) List() []User {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByToken(token string) (User, error) {
	if token == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByToken(token)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// Register creates a new account from an untrusted payload. Whatever roles or
// token the payload carried are discarded: every account starts with exactly
// ROLE_USER and a freshly issued api token.
func (s *Service) Register(user User) (User, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Email == "" {
		return User{}, ErrEmailRequired
	}
	if user.Password == "" {
		return User{}, ErrPasswordRequired
	}

	if _, err := s.repo.GetByEmail(user.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := HashPassword(user.Password)
	if err != nil {
		return User{}, err
	}
	user.Password = hashed

	token, err := NewAPIToken()
	if err != nil {
		return User{}, err
	}

	user.Roles = []string{RoleUser}
	user.APIToken = token
	user.CreatedAt = now()
	user.UpdatedAt = ""

	return s.repo.Create(user)
}

// Authenticate resolves an email/password pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if !CheckPassword(password, user.Password) {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// ProfileUpdate is the partial edit payload. Absent fields leave the record
// untouched.
type ProfileUpdate struct {
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// UpdateProfile merges the payload into the stored record. The password is
// rehashed only when present and non-empty; roles, api token and createdAt
// are never touched by an edit.
func (s *Service) UpdateProfile(id int, update ProfileUpdate) (User, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}

	if update.Email != nil && *update.Email != "" {
		email := normalizeEmail(*update.Email)
		if other, err := s.repo.GetByEmail(email); err == nil && other.ID != id {
			return User{}, ErrEmailExists
		} else if err != nil && err != ErrNotFound {
			return User{}, err
		}
		existing.Email = email
	}
	if update.FirstName != nil && *update.FirstName != "" {
		existing.FirstName = *update.FirstName
	}
	if update.LastName != nil && *update.LastName != "" {
		existing.LastName = *update.LastName
	}

	password := ""
	if update.Password != nil && *update.Password != "" {
		hashed, err := HashPassword(*update.Password)
		if err != nil {
			return User{}, err
		}
		password = hashed
	}
	existing.Password = password

	existing.UpdatedAt = now()

	return s.repo.Update(id, existing)
}
