package pageValidator

import (
	"coursepanel/middleware"
	"coursepanel/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func PageBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := new(models.SitePage)

		if err := c.BodyParser(page); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(page.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate Slug
		if strings.TrimSpace(page.Slug) == "" {
			errors["slug"] = "Slug is required!"
		} else if !slugPattern.MatchString(page.Slug) {
			errors["slug"] = "Slug may contain only lowercase letters, digits and hyphens!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPage", page)
		return c.Next()
	}
}

func LegalPageBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := new(models.LegalPage)

		if err := c.BodyParser(page); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(page.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate Slug
		if strings.TrimSpace(page.Slug) == "" {
			errors["slug"] = "Slug is required!"
		} else if !slugPattern.MatchString(page.Slug) {
			errors["slug"] = "Slug may contain only lowercase letters, digits and hyphens!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLegalPage", page)
		return c.Next()
	}
}
