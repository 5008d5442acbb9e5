package food

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"foodId", "uuid", "title", "description", "price", "categoryId", "createdAt", "updatedAt"}).
		AddRow(9, "a6b7a3c2-cc38-4f26-8e3c-3285f174c765", "Tarte aux pommes", "Dessert maison", 12.5, 3, "2026-01-01T00:00:00Z", nil)
	mock.ExpectQuery(`FROM food`).WithArgs(9).WillReturnRows(rows)

	food, err := repo.GetByID(9)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if food.Title != "Tarte aux pommes" || food.Price != 12.5 {
		t.Fatalf("unexpected food %+v", food)
	}
	if food.CategoryID == nil || *food.CategoryID != 3 {
		t.Fatalf("categoryId not scanned: %+v", food.CategoryID)
	}
	if food.UpdatedAt != "" {
		t.Fatalf("null updatedAt should scan to empty string, got %q", food.UpdatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM food").WithArgs(42).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
