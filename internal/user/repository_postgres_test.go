package user

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"userId", "email", "password", "firstName", "lastName", "roles_text", "apiToken", "createdAt", "updatedAt"})
}

func TestPostgresGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := userRows().
		AddRow(7, "a@x.com", "$2a$10$hash", "Jean", "Dupont", "ROLE_USER", "aabbcc", "2026-01-01T00:00:00Z", nil)
	mock.ExpectQuery("lower\\(email\\) = lower\\(\\$1\\)").WithArgs("a@x.com").WillReturnRows(rows)

	account, err := repo.GetByEmail("a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if account.ID != 7 || account.APIToken != "aabbcc" {
		t.Fatalf("unexpected account %+v", account)
	}
	if len(account.Roles) != 1 || account.Roles[0] != RoleUser {
		t.Fatalf("roles not parsed: %v", account.Roles)
	}
	if account.UpdatedAt != "" {
		t.Fatalf("null updatedAt should scan to empty string, got %q", account.UpdatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByTokenNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`"apiToken" = \$1`).WithArgs("nope").WillReturnRows(userRows())

	if _, err := repo.GetByToken("nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_idx"`))

	_, err = repo.Create(User{Email: "a@x.com", Password: "$2a$10$hash", Roles: []string{RoleUser}, APIToken: "aabbcc"})
	if err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateMissingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update(42, User{Email: "a@x.com"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
