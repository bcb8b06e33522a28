package server

import (
	"errors"

	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// contactSentURL is where a browser lands after a successful submission.
const contactSentURL = "/?contact=sent"

// Home returns the landing page.
func (s *Server) Home(c *fiber.Ctx) error {
	home, err := s.portfolio.Home(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(home)
}

// BlogList returns one page of published posts. Bad page numbers are clamped.
func (s *Server) BlogList(c *fiber.Ctx) error {
	list, err := s.blog.List(c.UserContext(), service.ParsePage(c.Query("page")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// BlogDetail returns a published post with its rendered body.
func (s *Server) BlogDetail(c *fiber.Ctx) error {
	detail, err := s.blog.Detail(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

func (s *Server) Projects(c *fiber.Ctx) error {
	list, err := s.portfolio.Projects(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (s *Server) ProjectDetail(c *fiber.Ctx) error {
	detail, err := s.portfolio.ProjectDetail(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

func (s *Server) Skills(c *fiber.Ctx) error {
	list, err := s.portfolio.Skills(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// SubmitContact accepts the contact form, form-encoded or JSON.
// A stored message counts as success even when the operator notification
// failed; the service has already logged that failure.
func (s *Server) SubmitContact(c *fiber.Ctx) error {
	var in service.ContactInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	msg, err := s.contact.Submit(c.UserContext(), in)
	if err != nil && !errors.Is(err, service.ErrNotificationFailed) {
		return respondError(c, err)
	}

	if wantsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":      msg.ID,
			"message": "Thank you for your message! I'll get back to you soon.",
		})
	}
	return c.Redirect(contactSentURL, fiber.StatusSeeOther)
}
