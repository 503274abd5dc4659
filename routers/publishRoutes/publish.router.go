package publishRoutes

import (
	controllers "coursepanel/controllers/publish"
	"coursepanel/middleware"
	"coursepanel/session"

	"github.com/gofiber/fiber/v2"
)

// SetupPublishRoutes sets up preview, publish and upload routes
func SetupPublishRoutes(router fiber.Router, s *session.Session) {
	previewGroup := router.Group("/preview")

	previewGroup.Get("/main", middleware.JWTMiddleware, controllers.PreviewMain(s))
	previewGroup.Get("/page/:slug", middleware.JWTMiddleware, controllers.PreviewPage(s))
	previewGroup.Get("/legal/:slug", middleware.JWTMiddleware, controllers.PreviewLegal(s))
	previewGroup.Get("/sitemap", middleware.JWTMiddleware, controllers.PreviewSitemap(s))

	publishGroup := router.Group("/publish")
	publishGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), controllers.PublishSite(s))
	publishGroup.Get("/check-links", middleware.JWTMiddleware, controllers.CheckLinks(s))

	uploadGroup := router.Group("/upload")
	uploadGroup.Post("/image", middleware.JWTMiddleware, controllers.UploadImage)
}
