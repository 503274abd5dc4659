package contentController

import (
	"coursepanel/middleware"
	"coursepanel/models"
	"coursepanel/session"
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetContent returns the full working document
func GetContent(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully.", s.Content())
	}
}

// SessionStatus reports whether unsaved edits exist
func SessionStatus(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Session status fetched successfully.", fiber.Map{
			"modified": s.IsModified(),
		})
	}
}

// UpdateContent merges a partial document into the working copy
func UpdateContent(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patch := c.Locals("validatedPatch").(*models.ContentPatch)
		s.UpdateContent(*patch)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully.", s.Content())
	}
}

// SaveContent persists the working document
func SaveContent(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.SaveNow() {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save content!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content saved successfully.", nil)
	}
}

// ResetContent replaces the working document with the built-in default
func ResetContent(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.ResetToDefault()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content reset to default.", s.Content())
	}
}

// ExportContent downloads the working document as a dated JSON file
func ExportContent(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text, err := s.ExportJSON()
		if err != nil {
			log.Printf("Error exporting content: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export content!", nil)
		}

		filename := "content-" + time.Now().Format("2006-01-02") + ".json"
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(text)
	}
}

// ImportContent merges an uploaded JSON document into the chosen target:
// "full" replaces everything, "main" merges the root fields, any other
// value is a page slug.
func ImportContent(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		target := c.Locals("importTarget").(string)

		text := c.FormValue("json")
		if fileHeader, err := c.FormFile("file"); err == nil {
			src, err := fileHeader.Open()
			if err != nil {
				log.Printf("Error opening uploaded file: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
			}
			defer src.Close()

			raw, err := io.ReadAll(src)
			if err != nil {
				log.Printf("Error reading uploaded file: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
			}
			text = string(raw)
		}

		if !s.ImportJSON(text, target) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid JSON or unknown import target!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content imported successfully.", s.Content())
	}
}
