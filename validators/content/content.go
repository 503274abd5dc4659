package contentValidator

import (
	"coursepanel/middleware"
	"coursepanel/models"
	"coursepanel/session"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		patch := new(models.ContentPatch)

		if err := c.BodyParser(patch); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedPatch", patch)
		return c.Next()
	}
}

func ImportContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		target := strings.TrimSpace(c.FormValue("target", session.ImportTargetFull))
		if target == "" {
			errors["target"] = "Target is required!"
		}

		if _, err := c.FormFile("file"); err != nil && strings.TrimSpace(c.FormValue("json")) == "" {
			errors["file"] = "A JSON file or a json field is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("importTarget", target)
		return c.Next()
	}
}

func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		course := new(models.Course)

		if err := c.BodyParser(course); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(course.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate School
		if strings.TrimSpace(course.School) == "" {
			errors["school"] = "School is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", course)
		return c.Next()
	}
}

func ReorderCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			From *int `json:"from"`
			To   *int `json:"to"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate From
		if reqData.From == nil || *reqData.From < 0 {
			errors["from"] = "From must be zero or greater!"
		}

		// Validate To
		if reqData.To == nil || *reqData.To < 0 {
			errors["to"] = "To must be zero or greater!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("reorderFrom", *reqData.From)
		c.Locals("reorderTo", *reqData.To)
		return c.Next()
	}
}

func BulkURLs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Urls   string `json:"urls"`
			Target string `json:"target"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Urls
		if strings.TrimSpace(reqData.Urls) == "" {
			errors["urls"] = "Urls text is required!"
		}

		// Validate Target
		if strings.TrimSpace(reqData.Target) == "" {
			errors["target"] = "Target is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("bulkText", reqData.Urls)
		c.Locals("bulkTarget", reqData.Target)
		return c.Next()
	}
}

func BulkPromos() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Promos         string `json:"promos"`
			Target         string `json:"target"`
			DefaultText    string `json:"defaultText"`
			DefaultPercent int    `json:"defaultPercent"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Promos
		if strings.TrimSpace(reqData.Promos) == "" {
			errors["promos"] = "Promos text is required!"
		}

		// Validate Target
		if strings.TrimSpace(reqData.Target) == "" {
			errors["target"] = "Target is required!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("bulkText", reqData.Promos)
		c.Locals("bulkTarget", reqData.Target)
		c.Locals("bulkDefaultText", reqData.DefaultText)
		c.Locals("bulkDefaultPercent", reqData.DefaultPercent)
		return c.Next()
	}
}
