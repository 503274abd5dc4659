package authController

import (
	"coursepanel/config"
	"coursepanel/middleware"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login exchanges the panel secret for a JWT. There are no user accounts:
// one shared secret guards the whole panel, so a wrong secret and a missing
// secret look the same to the caller.
func Login(c *fiber.Ctx) error {
	secret := c.Locals("loginSecret").(string)

	if err := bcrypt.CompareHashAndPassword(config.AppConfig.AdminSecretHash, []byte(secret)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid secret!", nil)
	}

	token, err := middleware.GenerateJWT("admin")
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
	})
}
