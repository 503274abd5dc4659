package contentController

import (
	"coursepanel/middleware"
	"coursepanel/models"
	"coursepanel/session"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// AddCourse appends a fresh course to the main list
func AddCourse(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		course := s.AddCourse()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
	}
}

// UpdateCourse overwrites the course with the given ID
func UpdateCourse(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		course := c.Locals("validatedCourse").(*models.Course)
		if !s.ReplaceCourse(id, *course) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", nil)
	}
}

// DeleteCourse removes the course with the given ID
func DeleteCourse(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		if !s.RemoveCourse(id) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
	}
}

// ReorderCourses moves a course from one display position to another
func ReorderCourses(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := c.Locals("reorderFrom").(int)
		to := c.Locals("reorderTo").(int)

		if !s.ReorderCourses(from, to) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Position out of range!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses reordered successfully.", s.Content().Courses)
	}
}

// BulkURLs assigns newline-separated URLs positionally; the batch is atomic
func BulkURLs(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text := c.Locals("bulkText").(string)
		target := c.Locals("bulkTarget").(string)

		if err := s.ApplyBulkURLs(text, target); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "URLs assigned successfully.", nil)
	}
}

// BulkPromos assigns newline-separated promo-code lines positionally
func BulkPromos(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text := c.Locals("bulkText").(string)
		target := c.Locals("bulkTarget").(string)
		defaultText := c.Locals("bulkDefaultText").(string)
		defaultPercent := c.Locals("bulkDefaultPercent").(int)

		if err := s.ApplyBulkPromos(text, target, defaultText, defaultPercent); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Promo codes assigned successfully.", nil)
	}
}
