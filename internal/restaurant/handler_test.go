package restaurant

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(seed []Restaurant) (*fiber.App, *Service) {
	service := NewService(NewInMemoryRepository(seed))
	handler := NewHandler(service)

	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	handler.RegisterProtectedRoutes(app)
	return app, service
}

func TestCreateAndShowRestaurant(t *testing.T) {
	app, _ := makeApp(nil)

	body := `{"name":"Quai Antique","description":"Cuisine savoyarde","amOpeningTime":["11:00-14:00"],"pmOpeningTime":["18:30-22:00"],"maxGuest":40}`
	req := httptest.NewRequest("POST", "/api/restaurant", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/api/restaurant/1" {
		t.Fatalf("unexpected Location header %q", loc)
	}

	var created Restaurant
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.ID == 0 || created.CreatedAt == "" {
		t.Fatalf("create response missing id or createdAt: %+v", created)
	}

	req2 := httptest.NewRequest("GET", "/api/restaurant/1", nil)
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("show request failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	b, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b), "Quai Antique") {
		t.Fatalf("show body missing name: %s", b)
	}

	reqMissing := httptest.NewRequest("GET", "/api/restaurant/99", nil)
	resMissing, err := app.Test(reqMissing)
	if err != nil {
		t.Fatalf("missing show request failed: %v", err)
	}
	if resMissing.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", resMissing.StatusCode)
	}
}

func TestEditRestaurantPartialMerge(t *testing.T) {
	seed := []Restaurant{{
		ID:          3,
		Name:        "Old name",
		Description: "Old description",
		MaxGuest:    20,
		CreatedAt:   "2026-01-01T00:00:00Z",
	}}
	app, service := makeApp(seed)

	req := httptest.NewRequest("PUT", "/api/restaurant/3", strings.NewReader(`{"name":"New name","maxGuest":35}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("edit request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}

	updated, err := service.GetByID(3)
	if err != nil {
		t.Fatalf("lookup after edit failed: %v", err)
	}
	if updated.Name != "New name" || updated.MaxGuest != 35 {
		t.Fatalf("edit not applied: %+v", updated)
	}
	if updated.Description != "Old description" {
		t.Fatalf("absent field was modified: %q", updated.Description)
	}
	if updated.CreatedAt != "2026-01-01T00:00:00Z" || updated.UpdatedAt == "" {
		t.Fatalf("timestamps wrong after edit: %+v", updated)
	}

	reqMissing := httptest.NewRequest("PUT", "/api/restaurant/99", strings.NewReader(`{"name":"x"}`))
	reqMissing.Header.Set("Content-Type", "application/json")
	resMissing, err := app.Test(reqMissing)
	if err != nil {
		t.Fatalf("missing edit request failed: %v", err)
	}
	if resMissing.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resMissing.StatusCode)
	}
}

func TestDeleteRestaurant(t *testing.T) {
	app, service := makeApp([]Restaurant{{ID: 5, Name: "To delete"}})

	req := httptest.NewRequest("DELETE", "/api/restaurant/5", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	if _, err := service.GetByID(5); err != ErrNotFound {
		t.Fatalf("restaurant still present after delete: %v", err)
	}

	res2, err := app.Test(httptest.NewRequest("DELETE", "/api/restaurant/5", nil))
	if err != nil {
		t.Fatalf("second delete request failed: %v", err)
	}
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", res2.StatusCode)
	}
}

func TestSeed(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	if n := Seed(repo); n != seedCount {
		t.Fatalf("expected %d seeded restaurants, got %d", seedCount, n)
	}
	for _, restaurant := range repo.List() {
		if restaurant.MaxGuest < 10 || restaurant.MaxGuest > 50 {
			t.Fatalf("seeded maxGuest out of range: %+v", restaurant)
		}
	}

	// idempotent on a non-empty repository
	if n := Seed(repo); n != 0 {
		t.Fatalf("seed on non-empty repository created %d rows", n)
	}
}
