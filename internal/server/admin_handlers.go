package server

import (
	"time"

	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AdminLogin exchanges the operator credentials for a bearer token.
func (s *Server) AdminLogin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	token, expires, err := s.admin.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"token":      token,
		"expires_at": expires.UTC().Format(time.RFC3339),
	})
}

// Site settings and about

func (s *Server) GetSiteSettings(c *fiber.Ctx) error {
	settings, err := s.admin.GetSettings(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (s *Server) CreateSiteSettings(c *fiber.Ctx) error {
	var in models.SiteSettings
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	settings, err := s.admin.CreateSettings(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(settings)
}

func (s *Server) UpdateSiteSettings(c *fiber.Ctx) error {
	var in models.SiteSettings
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	settings, err := s.admin.UpdateSettings(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (s *Server) DeleteSiteSettings(c *fiber.Ctx) error {
	if err := s.admin.DeleteSettings(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) GetAbout(c *fiber.Ctx) error {
	about, err := s.admin.GetAbout(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(about)
}

func (s *Server) UpdateAbout(c *fiber.Ctx) error {
	var in struct {
		Content string `json:"content"`
	}
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	about, err := s.admin.SaveAbout(c.UserContext(), in.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(about)
}

// Skills

func (s *Server) ListSkills(c *fiber.Ctx) error {
	rows, err := s.admin.ListSkills(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (s *Server) GetSkill(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	skill, err := s.admin.GetSkill(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(skill)
}

func (s *Server) CreateSkill(c *fiber.Ctx) error {
	var in models.Skill
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	skill, err := s.admin.CreateSkill(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

func (s *Server) UpdateSkill(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.Skill
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	skill, err := s.admin.UpdateSkill(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(skill)
}

func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.admin.DeleteSkill(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetSkillLevels sets the listed skills back to the middle level.
func (s *Server) ResetSkillLevels(c *fiber.Ctx) error {
	ids, err := parseIDList(c)
	if err != nil {
		return nil
	}
	n, err := s.admin.ResetSkillLevels(c.UserContext(), ids)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": n})
}

// Projects

func (s *Server) ListProjects(c *fiber.Ctx) error {
	rows, err := s.admin.ListProjects(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (s *Server) GetProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	project, err := s.admin.GetProject(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (s *Server) CreateProject(c *fiber.Ctx) error {
	var in models.Project
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	project, err := s.admin.CreateProject(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.Project
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	project, err := s.admin.UpdateProject(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.admin.DeleteProject(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) AddProjectImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.ProjectImage
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	img, err := s.admin.AddProjectImage(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(img)
}

func (s *Server) DeleteProjectImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	imageID, err := parseID(c, "imageId")
	if err != nil {
		return nil
	}
	if err := s.admin.DeleteProjectImage(c.UserContext(), id, imageID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Education

func (s *Server) ListEducation(c *fiber.Ctx) error {
	rows, err := s.admin.ListEducation(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (s *Server) GetEducation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	e, err := s.admin.GetEducation(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

func (s *Server) CreateEducation(c *fiber.Ctx) error {
	var in models.Education
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	e, err := s.admin.CreateEducation(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (s *Server) UpdateEducation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.Education
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	e, err := s.admin.UpdateEducation(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.admin.DeleteEducation(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Certifications

func (s *Server) ListCertifications(c *fiber.Ctx) error {
	rows, err := s.admin.ListCertifications(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (s *Server) GetCertification(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	cert, err := s.admin.GetCertification(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cert)
}

func (s *Server) CreateCertification(c *fiber.Ctx) error {
	var in models.Certification
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	cert, err := s.admin.CreateCertification(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cert)
}

func (s *Server) UpdateCertification(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.Certification
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	cert, err := s.admin.UpdateCertification(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cert)
}

func (s *Server) DeleteCertification(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.admin.DeleteCertification(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Extracurriculars

func (s *Server) ListExtracurriculars(c *fiber.Ctx) error {
	rows, err := s.admin.ListExtracurriculars(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (s *Server) GetExtracurricular(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	e, err := s.admin.GetExtracurricular(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

func (s *Server) CreateExtracurricular(c *fiber.Ctx) error {
	var in models.Extracurricular
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	e, err := s.admin.CreateExtracurricular(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (s *Server) UpdateExtracurricular(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.Extracurricular
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	e, err := s.admin.UpdateExtracurricular(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

func (s *Server) DeleteExtracurricular(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.admin.DeleteExtracurricular(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Tags

func (s *Server) ListTags(c *fiber.Ctx) error {
	tags, err := s.admin.ListTags(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tags)
}

func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	tag, err := s.admin.GetTag(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tag)
}

func (s *Server) CreateTag(c *fiber.Ctx) error {
	var in models.Tag
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	tag, err := s.admin.CreateTag(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

func (s *Server) UpdateTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var in models.Tag
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	tag, err := s.admin.UpdateTag(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tag)
}

func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.admin.DeleteTag(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Posts

func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.admin.ListPosts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	post, err := s.admin.GetPost(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// PreviewPost renders a post by slug, published or not.
func (s *Server) PreviewPost(c *fiber.Ctx) error {
	detail, err := s.admin.PreviewPost(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.PostInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	post, err := s.admin.CreatePost(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var in service.PostInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	post, err := s.admin.UpdatePost(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.admin.DeletePost(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Contact messages

func (s *Server) ListMessages(c *fiber.Ctx) error {
	rows, err := s.admin.ListMessages(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	unread, err := s.admin.UnreadMessages(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"messages": rows, "unread": unread})
}

func (s *Server) GetMessage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	msg, err := s.admin.GetMessage(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(msg)
}

func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.admin.DeleteMessage(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) MarkMessagesRead(c *fiber.Ctx) error {
	return s.markMessages(c, true)
}

func (s *Server) MarkMessagesUnread(c *fiber.Ctx) error {
	return s.markMessages(c, false)
}

func (s *Server) markMessages(c *fiber.Ctx, read bool) error {
	ids, err := parseIDList(c)
	if err != nil {
		return nil
	}
	n, err := s.admin.MarkMessages(c.UserContext(), ids, read)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": n})
}
