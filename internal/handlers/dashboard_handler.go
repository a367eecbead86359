package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

type DashboardHandler struct {
	submissionRepo repositories.SubmissionRepository
}

func NewDashboardHandler(submissionRepo repositories.SubmissionRepository) *DashboardHandler {
	return &DashboardHandler{
		submissionRepo: submissionRepo,
	}
}

func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	submissions, err := h.submissionRepo.FindAll(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("dashboard", models.DashboardPage{Submissions: submissions})
}

func (h *DashboardHandler) HandleListSubmissions(c *fiber.Ctx) error {
	submissions, err := h.submissionRepo.FindAll(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load submissions",
		})
	}

	return c.JSON(models.SubmissionListResponse{
		Count:       len(submissions),
		Submissions: submissions,
	})
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/dashboard", h.HandleDashboard)
	app.Get("/api/v1/submissions", h.HandleListSubmissions)
}
