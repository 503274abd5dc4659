package publishController

import (
	"coursepanel/config"
	"coursepanel/middleware"
	"coursepanel/renderer"
	"coursepanel/session"
	"coursepanel/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// PreviewMain renders the root page from the working document
func PreviewMain(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		html := renderer.New(s.Content()).MainPageHTML()
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(html)
	}
}

// PreviewPage renders the section page with the given slug
func PreviewPage(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")
		doc := s.Content()
		for _, page := range doc.Pages {
			if page.Slug == slug {
				html := renderer.New(doc).PageHTML(page)
				c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
				return c.SendString(html)
			}
		}
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Page not found!", nil)
	}
}

// PreviewLegal renders the legal page with the given slug
func PreviewLegal(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")
		doc := s.Content()
		for _, page := range doc.LegalPages {
			if page.Slug == slug {
				html := renderer.New(doc).LegalPageHTML(page)
				c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
				return c.SendString(html)
			}
		}
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Legal page not found!", nil)
	}
}

// PreviewSitemap renders sitemap.xml from the working document
func PreviewSitemap(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		xml := renderer.New(s.Content()).Sitemap()
		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		return c.SendString(xml)
	}
}

// PublishSite writes every generated file to the output directory
func PublishSite(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := utils.PublishAll(s.Content(), config.AppConfig.OutputDir)
		if err != nil {
			log.Printf("Error publishing site: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish site!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Site published successfully.", fiber.Map{
			"files": files,
		})
	}
}

// CheckLinks probes every course URL and reports the result per course
func CheckLinks(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report := utils.CheckCourseLinks(s.Content())
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Link check finished.", report)
	}
}

// UploadImage stores an uploaded image under the published uploads folder
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "An image file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.OutputDir+"/uploads")
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully.", fiber.Map{
		"url": utils.GetFileURL(path),
	})
}
