package authRoutes

import (
	controllers "coursepanel/controllers/auth"
	validators "coursepanel/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the panel login route
func SetupAuthRoutes(router fiber.Router) {
	authGroup := router.Group("/auth")

	authGroup.Post("/login", validators.Login(), controllers.Login)
}
