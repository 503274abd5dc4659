package pageRoutes

import (
	controllers "coursepanel/controllers/pages"
	"coursepanel/middleware"
	"coursepanel/session"
	validators "coursepanel/validators/pages"

	"github.com/gofiber/fiber/v2"
)

// SetupPageRoutes sets up section-page and legal-page management routes
func SetupPageRoutes(router fiber.Router, s *session.Session) {
	pageGroup := router.Group("/page")

	pageGroup.Get("/list", middleware.JWTMiddleware, controllers.ListPages(s))
	pageGroup.Post("/create", middleware.JWTMiddleware, controllers.AddPage(s))
	pageGroup.Put("/:id", middleware.JWTMiddleware, validators.PageBody(), controllers.UpdatePage(s))
	pageGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeletePage(s))
	pageGroup.Post("/:id/duplicate", middleware.JWTMiddleware, controllers.DuplicatePage(s))

	legalGroup := router.Group("/legal")
	legalGroup.Get("/list", middleware.JWTMiddleware, controllers.ListLegalPages(s))
	legalGroup.Post("/create", middleware.JWTMiddleware, controllers.AddLegalPage(s))
	legalGroup.Put("/:id", middleware.JWTMiddleware, validators.LegalPageBody(), controllers.UpdateLegalPage(s))
	legalGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteLegalPage(s))
}
