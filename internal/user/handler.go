package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// identityResponse is the shape shared by registration and login.
type identityResponse struct {
	User     string   `json:"user"`
	APIToken string   `json:"apiToken"`
	Roles    []string `json:"roles"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/registration", h.register)
	app.Post("/api/login", h.login)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/me", h.me)
	app.Get("/api/me/:id", h.me)
	app.Put("/api/me/edit/:id", h.editProfile)
	app.Get("/api/users", h.listUsers)
	app.Delete("/api/user/:id", h.deleteUser)
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Register(User{
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	})
	if err != nil {
		switch err {
		case ErrEmailExists, ErrEmailRequired:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		case ErrPasswordRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(identityResponse{
		User:     created.Email,
		APIToken: created.APIToken,
		Roles:    created.Roles,
	})
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	account, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		// one generic message: unknown email and wrong password must not
		// be distinguishable from the outside
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid email or password"})
	}

	return c.JSON(identityResponse{
		User:     account.Email,
		APIToken: account.APIToken,
		Roles:    account.Roles,
	})
}

// me returns the read projection of the authenticated account. When the route
// carries an id it must be the caller's own.
func (h *Handler) me(c *fiber.Ctx) error {
	account, err := CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if ferr := requireSelf(c, account); ferr != nil {
		return c.Status(ferr.Code).JSON(fiber.Map{"message": ferr.Message})
	}

	return c.JSON(sanitizeUser(account))
}

func (h *Handler) editProfile(c *fiber.Ctx) error {
	account, err := CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if ferr := requireSelf(c, account); ferr != nil {
		return c.Status(ferr.Code).JSON(fiber.Map{"message": ferr.Message})
	}

	payload := new(ProfileUpdate)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if _, err := h.service.UpdateProfile(account.ID, *payload); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		case ErrEmailExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	users := h.service.List()
	response := make([]User, 0, len(users))
	for _, account := range users {
		response = append(response, sanitizeUser(account))
	}
	return c.JSON(response)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// requireSelf rejects requests whose path id names someone other than the
// authenticated account. The route shape keeps the id for compatibility, but
// it is never a way to reach another user's record: a mismatch is a 403.
func requireSelf(c *fiber.Ctx, account User) *fiber.Error {
	raw := c.Params("id")
	if raw == "" {
		return nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if id != account.ID {
		return fiber.NewError(fiber.StatusForbidden, "forbidden")
	}
	return nil
}
