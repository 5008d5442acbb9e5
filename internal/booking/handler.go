package booking

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"restaurant-backend/internal/user"
)

type Handler struct {
	service *Service
}

type createRequest struct {
	RestaurantID int    `json:"restaurantId"`
	Guests       int    `json:"guests"`
	Date         string `json:"date"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// All booking routes require an authenticated user.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/booking", h.list)
	app.Post("/api/booking", h.create)
	app.Delete("/api/booking/:id", h.cancel)
}

func (h *Handler) list(c *fiber.Ctx) error {
	account, err := user.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	return c.JSON(h.service.ListByUser(account.ID))
}

func (h *Handler) create(c *fiber.Ctx) error {
	account, err := user.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(account.ID, Booking{
		RestaurantID: payload.RestaurantID,
		Guests:       payload.Guests,
		Date:         payload.Date,
	})
	if err != nil {
		switch err {
		case ErrRestaurantNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		case ErrInvalidGuests:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	c.Set("Location", "/api/booking/"+strconv.Itoa(created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) cancel(c *fiber.Ctx) error {
	account, err := user.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.service.Cancel(account.ID, id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "booking not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
