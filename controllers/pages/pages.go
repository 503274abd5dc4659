package pageController

import (
	"coursepanel/middleware"
	"coursepanel/models"
	"coursepanel/session"

	"github.com/gofiber/fiber/v2"
)

// ListPages returns all section pages
func ListPages(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Pages fetched successfully.", s.Content().Pages)
	}
}

// AddPage appends a fresh section page
func AddPage(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := s.AddPage()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Page created successfully.", page)
	}
}

// UpdatePage overwrites the page with the given ID
func UpdatePage(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.Locals("validatedPage").(*models.SitePage)
		if !s.UpdatePage(c.Params("id"), *page) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Page not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Page updated successfully.", nil)
	}
}

// DeletePage removes the page with the given ID
func DeletePage(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.RemovePage(c.Params("id")) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Page not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Page deleted successfully.", nil)
	}
}

// DuplicatePage deep-copies a page under a new ID and a "-copy" slug
func DuplicatePage(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dup, ok := s.DuplicatePage(c.Params("id"))
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Page not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Page duplicated successfully.", dup)
	}
}

// ListLegalPages returns all legal pages
func ListLegalPages(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Legal pages fetched successfully.", s.Content().LegalPages)
	}
}

// AddLegalPage appends a fresh legal page
func AddLegalPage(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := s.AddLegalPage()
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Legal page created successfully.", page)
	}
}

// UpdateLegalPage overwrites the legal page with the given ID
func UpdateLegalPage(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.Locals("validatedLegalPage").(*models.LegalPage)
		if !s.UpdateLegalPage(c.Params("id"), *page) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Legal page not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Legal page updated successfully.", nil)
	}
}

// DeleteLegalPage removes the legal page with the given ID
func DeleteLegalPage(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.RemoveLegalPage(c.Params("id")) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Legal page not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Legal page deleted successfully.", nil)
	}
}
