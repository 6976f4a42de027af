package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/form"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/internal/session"
	"resume-builder/internal/skills"
)

// ExportHistory lists past export attempts.
type ExportHistory interface {
	Recent(ctx context.Context, limit int) ([]domain.ExportEvent, error)
}

type Handler struct {
	sessions *session.Store
	history  ExportHistory
	log      *zap.Logger
}

func NewHandler(s *session.Store, h ExportHistory, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{sessions: s, history: h, log: log}
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.Health)
	app.Get("/skills/suggest", h.SuggestSkills)
	app.Get("/exports", h.RecentExports)

	s := app.Group("/sessions")
	s.Post("/", h.CreateSession)
	s.Get("/:id", h.GetSession)
	s.Delete("/:id", h.DeleteSession)

	s.Put("/:id/resume", h.ReplaceResume)
	s.Patch("/:id/fields", h.SetField)
	s.Put("/:id/photo", h.UploadPhoto)
	s.Delete("/:id/photo", h.ClearPhoto)

	s.Post("/:id/experience", h.AddExperience)
	s.Patch("/:id/experience/:itemId", h.UpdateExperience)
	s.Delete("/:id/experience/:itemId", h.RemoveExperience)
	s.Post("/:id/education", h.AddEducation)
	s.Patch("/:id/education/:itemId", h.UpdateEducation)
	s.Delete("/:id/education/:itemId", h.RemoveEducation)

	s.Post("/:id/skills", h.AddSkill)
	s.Delete("/:id/skills/:value", h.RemoveSkill)
	s.Put("/:id/skill-input", h.SetSkillInput)
	s.Post("/:id/skill-input/commit", h.CommitSkillInput)
	s.Post("/:id/skill-input/dismiss", h.DismissSuggestions)

	s.Post("/:id/enhance/summary", h.EnhanceSummary)
	s.Post("/:id/enhance/experience/:itemId", h.EnhanceExperience)

	s.Get("/:id/preview", h.Preview)
	s.Post("/:id/export", h.Export)
}

var errInvalidPayload = errors.New("invalid payload")

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, form.ErrSessionClosed):
		return fiber.StatusNotFound
	case errors.Is(err, form.ErrEnhancementInFlight), errors.Is(err, export.ErrExportInProgress):
		return fiber.StatusConflict
	case errors.Is(err, errInvalidPayload), errors.Is(err, model.ErrInvalidDocument), errors.Is(err, preview.ErrUnknownTemplate):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func (h *Handler) controller(c *fiber.Ctx) (*form.Controller, error) {
	return h.sessions.Get(c.Params("id"))
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "sessions": h.sessions.Len()})
}

func (h *Handler) SuggestSkills(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"suggestions": skills.Suggest(c.Query("q"))})
}

func (h *Handler) RecentExports(c *fiber.Ctx) error {
	if h.history == nil {
		return c.JSON(fiber.Map{"exports": []domain.ExportEvent{}})
	}
	events, err := h.history.Recent(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"exports": events})
}
