// Package form holds the per-session editing state: the resume itself and
// the transient UI state around it (skill input, suggestions, enhancement
// markers, banners).
package form

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/internal/skills"
	"resume-builder/pkg/ai"
)

// Enhancer rewrites text and reports whether the rewrite succeeded. On
// failure it returns the original text.
type Enhancer interface {
	TryEnhance(ctx context.Context, text string, role ai.Role) (string, error)
}

// Exporter turns a rendered document into a PDF.
type Exporter interface {
	Run(ctx context.Context, doc preview.Document, fullName string) (*export.Artifact, error)
	InProgress() bool
}

// Controller serialises all state transitions of one editing session. The
// lock is never held across an enhancement or export call.
type Controller struct {
	enhancer Enhancer
	exporter Exporter
	sched    Scheduler
	log      *zap.Logger

	mu     sync.Mutex
	data   model.ResumeData
	ui     UIState
	timers map[uint64]Timer
	seq    uint64
	closed bool

	jobs sync.WaitGroup
}

// NewController builds a controller over an empty resume. A nil scheduler
// uses RealScheduler; a nil logger discards output.
func NewController(enhancer Enhancer, exporter Exporter, sched Scheduler, log *zap.Logger) *Controller {
	if sched == nil {
		sched = RealScheduler
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		enhancer: enhancer,
		exporter: exporter,
		sched:    sched,
		log:      log,
		data:     model.New(),
		ui: UIState{
			Suggestions: []string{},
			Enhancing:   map[Target]Status{},
		},
		timers: map[uint64]Timer{},
	}
}

// Snapshot returns copies of both state containers.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	s := Snapshot{Resume: c.data.Clone(), UI: c.ui.clone()}
	c.mu.Unlock()
	if c.exporter != nil {
		s.UI.Exporting = c.exporter.InProgress()
	}
	return s
}

// Resume returns a copy of the current resume.
func (c *Controller) Resume() model.ResumeData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data.Clone()
}

func (c *Controller) update(fn func(model.ResumeData) model.ResumeData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = fn(c.data)
}

// Replace swaps in a whole resume, e.g. one decoded from an import.
func (c *Controller) Replace(data model.ResumeData) {
	c.update(func(model.ResumeData) model.ResumeData { return data.Normalize() })
}

func (c *Controller) SetField(name, value string) {
	c.update(func(r model.ResumeData) model.ResumeData { return r.SetField(name, value) })
}

func (c *Controller) SetPhoto(encoded string) {
	c.update(func(r model.ResumeData) model.ResumeData { return r.SetPhoto(encoded) })
}

// AddExperience appends an empty item and returns its id.
func (c *Controller) AddExperience() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.data, id = c.data.AddExperience()
	return id
}

func (c *Controller) RemoveExperience(id string) {
	c.update(func(r model.ResumeData) model.ResumeData { return r.RemoveExperience(id) })
}

func (c *Controller) UpdateExperienceField(id, field, value string) {
	c.update(func(r model.ResumeData) model.ResumeData { return r.UpdateExperienceField(id, field, value) })
}

// AddEducation appends an empty item and returns its id.
func (c *Controller) AddEducation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var id string
	c.data, id = c.data.AddEducation()
	return id
}

func (c *Controller) RemoveEducation(id string) {
	c.update(func(r model.ResumeData) model.ResumeData { return r.RemoveEducation(id) })
}

func (c *Controller) UpdateEducationField(id, field, value string) {
	c.update(func(r model.ResumeData) model.ResumeData { return r.UpdateEducationField(id, field, value) })
}

// AddSkill adds value to the skills and resets the skill input.
func (c *Controller) AddSkill(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addSkillLocked(value)
}

func (c *Controller) addSkillLocked(value string) {
	c.data = c.data.AddSkill(value)
	c.ui.SkillInput = ""
	c.ui.Suggestions = []string{}
	c.ui.SuggestionsVisible = false
}

func (c *Controller) RemoveSkill(value string) {
	c.update(func(r model.ResumeData) model.ResumeData { return r.RemoveSkill(value) })
}

// SetSkillInput stores the typed buffer and recomputes suggestions from its
// trimmed value.
func (c *Controller) SetSkillInput(buffer string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ui.SkillInput = buffer
	q := strings.TrimSpace(buffer)
	if q == "" {
		c.ui.Suggestions = []string{}
		c.ui.SuggestionsVisible = false
		return
	}
	c.ui.Suggestions = skills.Suggest(q)
	c.ui.SuggestionsVisible = true
}

// CommitSkillInput adds the first suggestion, or the trimmed buffer when
// there is none. It reports whether anything was committed.
func (c *Controller) CommitSkillInput() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	literal := strings.TrimSpace(c.ui.SkillInput)
	if literal == "" {
		return false
	}
	if len(c.ui.Suggestions) > 0 {
		c.addSkillLocked(c.ui.Suggestions[0])
	} else {
		c.addSkillLocked(literal)
	}
	return true
}

// DismissSuggestions hides the popup and keeps the buffer.
func (c *Controller) DismissSuggestions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ui.SuggestionsVisible = false
}

// Preview renders the current resume.
func (c *Controller) Preview(t preview.Template) (preview.Document, error) {
	return preview.Render(c.Resume(), t)
}

// Export renders the current resume and rasterizes it. Failures are
// returned and leave the state untouched.
func (c *Controller) Export(ctx context.Context, t preview.Template) (*export.Artifact, error) {
	data := c.Resume()
	doc, err := preview.Render(data, t)
	if err != nil {
		return nil, err
	}
	return c.exporter.Run(ctx, doc, data.FullName)
}

// showBannerLocked replaces the banner and schedules an unconditional clear.
func (c *Controller) showBannerLocked(text string, kind BannerKind) {
	c.ui.Banner = &Banner{Text: text, Kind: kind}
	if c.closed {
		return
	}
	c.seq++
	id := c.seq
	c.timers[id] = c.sched.AfterFunc(BannerTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.timers, id)
		c.ui.Banner = nil
	})
}

// Wait blocks until every background enhancement has finished.
func (c *Controller) Wait() {
	c.jobs.Wait()
}

// Close refuses new enhancements, stops pending banner timers and waits for
// background work already started.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	c.jobs.Wait()
}
