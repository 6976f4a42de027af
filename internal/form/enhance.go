package form

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"resume-builder/internal/model"
	"resume-builder/pkg/ai"
)

// enhanceJob is a prepared enhancement: the target is already marked in
// flight and counted in c.jobs, and run performs the call and applies the
// outcome.
type enhanceJob func(ctx context.Context)

// EnhanceSummary rewrites the summary and blocks until the outcome is
// applied. A blank summary is rejected with a banner and no call.
func (c *Controller) EnhanceSummary(ctx context.Context) error {
	return c.runNow(ctx, c.prepareSummary)
}

// StartEnhanceSummary is EnhanceSummary without waiting for the remote call.
func (c *Controller) StartEnhanceSummary(ctx context.Context) error {
	return c.runBackground(ctx, c.prepareSummary)
}

// EnhanceExperience rewrites the description of one experience item and
// blocks until the outcome is applied.
func (c *Controller) EnhanceExperience(ctx context.Context, id string) error {
	return c.runNow(ctx, func() (enhanceJob, error) { return c.prepareExperience(id) })
}

// StartEnhanceExperience is EnhanceExperience without waiting for the remote
// call.
func (c *Controller) StartEnhanceExperience(ctx context.Context, id string) error {
	return c.runBackground(ctx, func() (enhanceJob, error) { return c.prepareExperience(id) })
}

func (c *Controller) runNow(ctx context.Context, prepare func() (enhanceJob, error)) error {
	job, err := prepare()
	if err != nil || job == nil {
		return err
	}
	defer c.jobs.Done()
	job(ctx)
	return nil
}

func (c *Controller) runBackground(ctx context.Context, prepare func() (enhanceJob, error)) error {
	job, err := prepare()
	if err != nil || job == nil {
		return err
	}
	go func() {
		defer c.jobs.Done()
		job(ctx)
	}()
	return nil
}

// beginLocked marks target in flight, clears the banner and registers the
// job with c.jobs so Close cannot miss it.
func (c *Controller) beginLocked(target Target) {
	c.ui.Enhancing[target] = StatusInFlight
	c.ui.Banner = nil
	c.jobs.Add(1)
}

func (c *Controller) prepareSummary() (enhanceJob, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrSessionClosed
	}
	if c.ui.Status(SummaryTarget) == StatusInFlight {
		return nil, ErrEnhancementInFlight
	}
	summary := c.data.Summary
	if strings.TrimSpace(summary) == "" {
		c.showBannerLocked(MsgSummaryRequired, BannerError)
		return nil, nil
	}
	c.beginLocked(SummaryTarget)

	return func(ctx context.Context) {
		result, err := c.enhancer.TryEnhance(ctx, summary, ai.RoleSummary)

		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.ui.Enhancing, SummaryTarget)
		if err != nil {
			c.log.Info("summary enhancement failed", zap.Error(err))
			c.showBannerLocked(MsgSummaryFailed, BannerError)
			return
		}
		c.data = c.data.SetField(model.FieldSummary, result)
		c.showBannerLocked(MsgSummaryEnhanced, BannerSuccess)
	}, nil
}

func (c *Controller) prepareExperience(id string) (enhanceJob, error) {
	// id outlives the caller's request buffer.
	id = strings.Clone(id)
	target := ExperienceTarget(id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrSessionClosed
	}
	if c.ui.Status(target) == StatusInFlight {
		return nil, ErrEnhancementInFlight
	}
	item, ok := c.data.FindExperience(id)
	if !ok || strings.TrimSpace(item.Description) == "" {
		c.showBannerLocked(MsgDescriptionRequired, BannerError)
		return nil, nil
	}
	c.beginLocked(target)

	description := item.Description
	return func(ctx context.Context) {
		result, err := c.enhancer.TryEnhance(ctx, description, ai.RoleExperience)

		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.ui.Enhancing, target)
		if err != nil {
			c.log.Info("experience enhancement failed", zap.String("id", id), zap.Error(err))
			c.showBannerLocked(MsgDescriptionFailed, BannerError)
			return
		}
		if _, ok := c.data.FindExperience(id); !ok {
			c.log.Debug("experience removed during enhancement; result dropped", zap.String("id", id))
		} else {
			c.data = c.data.UpdateExperienceField(id, model.FieldDescription, result)
		}
		c.showBannerLocked(MsgExperienceEnhanced, BannerSuccess)
	}, nil
}
