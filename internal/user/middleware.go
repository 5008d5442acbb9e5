package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// localsUserKey is where the auth middleware stores the resolved account.
const localsUserKey = "currentUser"

// AuthMiddleware validates the bearer api token on every protected route and
// resolves it to the owning account. Requests with a missing or unknown token
// get a 401 without reaching the handler.
func AuthMiddleware(service *Service) fiber.Handler {
	return keyauth.New(keyauth.Config{
		Validator: func(c *fiber.Ctx, token string) (bool, error) {
			account, err := service.GetByToken(token)
			if err != nil {
				return false, keyauth.ErrMissingOrMalformedAPIKey
			}
			c.Locals(localsUserKey, account)
			return true, nil
		},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
}

// CurrentUser returns the account resolved by AuthMiddleware for this request.
func CurrentUser(c *fiber.Ctx) (User, error) {
	account, ok := c.Locals(localsUserKey).(User)
	if !ok {
		return User{}, fiber.ErrUnauthorized
	}
	return account, nil
}
