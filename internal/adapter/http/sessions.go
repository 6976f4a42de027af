package http

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"resume-builder/internal/form"
	"resume-builder/internal/model"
)

type fieldReq struct {
	Name  string `json:"name"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type bufferReq struct {
	Buffer string `json:"buffer"`
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	id, ctrl := h.sessions.Create()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "state": ctrl.Snapshot()})
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ctrl.Snapshot())
}

func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	if err := h.sessions.Delete(c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// edit runs fn against the session's controller and answers with the new
// snapshot.
func (h *Handler) edit(c *fiber.Ctx, fn func(*form.Controller) error) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := fn(ctrl); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ctrl.Snapshot())
}

func (h *Handler) ReplaceResume(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	data, err := model.Decode(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	ctrl.Replace(data)
	return c.JSON(ctrl.Snapshot())
}

func (h *Handler) SetField(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		var req fieldReq
		if err := c.BodyParser(&req); err != nil {
			return errInvalidPayload
		}
		ctrl.SetField(req.Name, req.Value)
		return nil
	})
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	id := ctrl.AddExperience()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"itemId": id, "state": ctrl.Snapshot()})
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		var req fieldReq
		if err := c.BodyParser(&req); err != nil {
			return errInvalidPayload
		}
		ctrl.UpdateExperienceField(c.Params("itemId"), req.Field, req.Value)
		return nil
	})
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		ctrl.RemoveExperience(c.Params("itemId"))
		return nil
	})
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	id := ctrl.AddEducation()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"itemId": id, "state": ctrl.Snapshot()})
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		var req fieldReq
		if err := c.BodyParser(&req); err != nil {
			return errInvalidPayload
		}
		ctrl.UpdateEducationField(c.Params("itemId"), req.Field, req.Value)
		return nil
	})
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		ctrl.RemoveEducation(c.Params("itemId"))
		return nil
	})
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		var req fieldReq
		if err := c.BodyParser(&req); err != nil {
			return errInvalidPayload
		}
		ctrl.AddSkill(req.Value)
		return nil
	})
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		value, err := url.PathUnescape(c.Params("value"))
		if err != nil {
			return fmt.Errorf("%w: skill %q", errInvalidPayload, c.Params("value"))
		}
		ctrl.RemoveSkill(value)
		return nil
	})
}

func (h *Handler) SetSkillInput(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		var req bufferReq
		if err := c.BodyParser(&req); err != nil {
			return errInvalidPayload
		}
		ctrl.SetSkillInput(req.Buffer)
		return nil
	})
}

func (h *Handler) CommitSkillInput(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		ctrl.CommitSkillInput()
		return nil
	})
}

func (h *Handler) DismissSuggestions(c *fiber.Ctx) error {
	return h.edit(c, func(ctrl *form.Controller) error {
		ctrl.DismissSuggestions()
		return nil
	})
}

// EnhanceSummary starts the rewrite in the background and answers 202. The
// outcome shows up in the session banner.
func (h *Handler) EnhanceSummary(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := ctrl.StartEnhanceSummary(context.Background()); err != nil {
		return h.fail(c, err)
	}
	h.log.Debug("summary enhancement started", zap.String("session", c.Params("id")))
	return c.Status(fiber.StatusAccepted).JSON(ctrl.Snapshot())
}

func (h *Handler) EnhanceExperience(c *fiber.Ctx) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return h.fail(c, err)
	}
	// Params alias the request buffer; the id outlives this request.
	itemID := utils.CopyString(c.Params("itemId"))
	if err := ctrl.StartEnhanceExperience(context.Background(), itemID); err != nil {
		return h.fail(c, err)
	}
	h.log.Debug("experience enhancement started",
		zap.String("session", c.Params("id")),
		zap.String("item", itemID))
	return c.Status(fiber.StatusAccepted).JSON(ctrl.Snapshot())
}
