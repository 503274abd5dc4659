package contentRoutes

import (
	controllers "coursepanel/controllers/content"
	"coursepanel/middleware"
	"coursepanel/session"
	validators "coursepanel/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up all content and course management routes
func SetupContentRoutes(router fiber.Router, s *session.Session) {
	contentGroup := router.Group("/content")

	// Document state
	contentGroup.Get("/", middleware.JWTMiddleware, controllers.GetContent(s))
	contentGroup.Get("/status", middleware.JWTMiddleware, controllers.SessionStatus(s))
	contentGroup.Patch("/", middleware.JWTMiddleware, validators.UpdateContent(), controllers.UpdateContent(s))
	contentGroup.Post("/save", middleware.JWTMiddleware, controllers.SaveContent(s))
	contentGroup.Post("/reset", middleware.JWTMiddleware, middleware.RequireRole("admin"), controllers.ResetContent(s))

	// Import / Export
	contentGroup.Get("/export", middleware.JWTMiddleware, controllers.ExportContent(s))
	contentGroup.Post("/import", middleware.JWTMiddleware, middleware.RequireRole("admin"), validators.ImportContent(), controllers.ImportContent(s))

	// Course CRUD
	courseGroup := router.Group("/course")
	courseGroup.Post("/create", middleware.JWTMiddleware, controllers.AddCourse(s))
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.CourseBody(), controllers.UpdateCourse(s))
	courseGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteCourse(s))
	courseGroup.Post("/reorder", middleware.JWTMiddleware, validators.ReorderCourses(), controllers.ReorderCourses(s))

	// Bulk operations
	courseGroup.Post("/bulk-urls", middleware.JWTMiddleware, validators.BulkURLs(), controllers.BulkURLs(s))
	courseGroup.Post("/bulk-promos", middleware.JWTMiddleware, validators.BulkPromos(), controllers.BulkPromos(s))
}
