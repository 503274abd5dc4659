package authValidator

import (
	"coursepanel/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Secret string `json:"secret"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Secret
		if strings.TrimSpace(reqData.Secret) == "" {
			errors["secret"] = "Secret is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("loginSecret", reqData.Secret)
		return c.Next()
	}
}
