package handlers

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

// multipartOverhead is the room left above the file limit for the form
// boundaries, part headers and the job description field.
const multipartOverhead = 1 << 20

// BodyLimit is the request body limit for a given file limit. The body must
// fit the whole multipart form so an oversized file reaches the handler's own
// size check.
func BodyLimit(maxFileSize int64) int {
	return int(maxFileSize + multipartOverhead)
}

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleIndex renders the empty analysis form.
func (h *AnalyzeHandler) HandleIndex(c *fiber.Ctx) error {
	return c.Render("index", models.AnalyzePage{})
}

// HandleAnalyze runs the pipeline and renders the form with the result.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	submission, err := h.analyze(c)
	if err != nil {
		return err
	}

	return c.Render("index", models.AnalyzePage{
		HasResult: true,
		Score:     submission.Score,
		Feedback:  submission.Feedback,
	})
}

// HandleAnalyzeAPI is the JSON variant of HandleAnalyze.
func (h *AnalyzeHandler) HandleAnalyzeAPI(c *fiber.Ctx) error {
	submission, err := h.analyze(c)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewAnalyzeResponse(submission))
}

func (h *AnalyzeHandler) analyze(c *fiber.Ctx) (*models.Submission, error) {
	file, err := resumeFile(c)
	if err != nil {
		return nil, err
	}

	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return nil, fiber.NewError(
			fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		)
	}

	submission, err := h.analyzer.Analyze(c.UserContext(), file, c.FormValue("jd"))
	if err != nil {
		return nil, analysisError(err)
	}

	return submission, nil
}

func resumeFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	file, err := c.FormFile("resume")
	if err != nil || file.Filename == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "No resume uploaded. Please attach a file in the 'resume' field.")
	}
	return file, nil
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.HandleIndex)
	app.Post("/analyze", h.HandleAnalyze)
	app.Post("/api/v1/analyze", h.HandleAnalyzeAPI)
}
