package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/pkg/ai"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTimer struct {
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// manualScheduler records scheduled calls and runs them on demand.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
	delays []time.Duration
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{f: f}
	s.timers = append(s.timers, t)
	s.delays = append(s.delays, d)
	return t
}

// fire runs the i-th scheduled call unless it was stopped.
func (s *manualScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	s.mu.Unlock()
	if t.stopped || t.fired {
		return
	}
	t.fired = true
	t.f()
}

func (s *manualScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

type call struct {
	text string
	role ai.Role
}

type fakeEnhancer struct {
	mu     sync.Mutex
	calls  []call
	result string
	err    error
	gate   chan struct{}
}

func (f *fakeEnhancer) TryEnhance(_ context.Context, text string, role ai.Role) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{text, role})
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return text, f.err
	}
	return f.result, nil
}

func (f *fakeEnhancer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeExporter struct {
	doc      preview.Document
	fullName string
	err      error
}

func (f *fakeExporter) Run(_ context.Context, doc preview.Document, fullName string) (*export.Artifact, error) {
	f.doc = doc
	f.fullName = fullName
	if f.err != nil {
		return nil, f.err
	}
	return &export.Artifact{FileName: export.FileName(fullName), PDF: []byte("%PDF")}, nil
}

func (f *fakeExporter) InProgress() bool { return false }

func newTestController(enh *fakeEnhancer) (*Controller, *manualScheduler, *fakeExporter) {
	sched := &manualScheduler{}
	exp := &fakeExporter{}
	return NewController(enh, exp, sched, nil), sched, exp
}

func TestNewController_StartsEmpty(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})
	s := c.Snapshot()
	assert.Equal(t, model.New(), s.Resume)
	assert.Empty(t, s.UI.SkillInput)
	assert.Empty(t, s.UI.Suggestions)
	assert.False(t, s.UI.SuggestionsVisible)
	assert.Nil(t, s.UI.Banner)
	assert.False(t, s.UI.Exporting)
}

func TestModelDelegation(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})

	c.SetField(model.FieldFullName, "Jane Doe")
	c.SetPhoto("data:image/png;base64,AAAA")
	id1 := c.AddExperience()
	id2 := c.AddExperience()
	c.UpdateExperienceField(id2, model.FieldCompany, "Acme")
	c.RemoveExperience(id1)
	edu := c.AddEducation()
	c.UpdateEducationField(edu, model.FieldSchool, "MIT")
	c.AddSkill("Go")
	c.AddSkill("Go")
	c.AddSkill("Rust")
	c.RemoveSkill("Rust")

	r := c.Resume()
	assert.Equal(t, "Jane Doe", r.FullName)
	assert.Equal(t, "data:image/png;base64,AAAA", r.Photo)
	require.Len(t, r.Experience, 1)
	assert.Equal(t, id2, r.Experience[0].ID)
	assert.Equal(t, "Acme", r.Experience[0].Company)
	require.Len(t, r.Education, 1)
	assert.Equal(t, "MIT", r.Education[0].School)
	assert.Equal(t, []string{"Go"}, r.Skills)

	c.RemoveEducation(edu)
	assert.Empty(t, c.Resume().Education)
}

func TestReplace_Normalizes(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})
	c.Replace(model.ResumeData{
		FullName: "Imported",
		Skills:   []string{"Go", "Go"},
		Experience: []model.ExperienceItem{
			{ID: "a"}, {ID: "a"},
		},
	})
	r := c.Resume()
	assert.Equal(t, []string{"Go"}, r.Skills)
	require.Len(t, r.Experience, 2)
	assert.NotEqual(t, r.Experience[0].ID, r.Experience[1].ID)
	assert.NotNil(t, r.Education)
}

func TestSnapshot_IsACopy(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})
	c.AddSkill("Go")
	c.SetSkillInput("ja")

	s := c.Snapshot()
	s.Resume.Skills[0] = "mutated"
	s.UI.Suggestions[0] = "mutated"

	again := c.Snapshot()
	assert.Equal(t, []string{"Go"}, again.Resume.Skills)
	assert.NotEqual(t, "mutated", again.UI.Suggestions[0])
}

func TestSkillInput_RecomputesSuggestions(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})

	c.SetSkillInput("  java ")
	ui := c.Snapshot().UI
	assert.Equal(t, "  java ", ui.SkillInput)
	assert.Equal(t, []string{"JavaScript", "Java"}, ui.Suggestions)
	assert.True(t, ui.SuggestionsVisible)

	c.SetSkillInput("   ")
	ui = c.Snapshot().UI
	assert.Empty(t, ui.Suggestions)
	assert.False(t, ui.SuggestionsVisible)
}

func TestCommitSkillInput_UsesFirstSuggestion(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})

	c.SetSkillInput("java")
	assert.True(t, c.CommitSkillInput())

	s := c.Snapshot()
	assert.Equal(t, []string{"JavaScript"}, s.Resume.Skills)
	assert.Empty(t, s.UI.SkillInput)
	assert.Empty(t, s.UI.Suggestions)
	assert.False(t, s.UI.SuggestionsVisible)
}

func TestCommitSkillInput_FallsBackToTrimmedLiteral(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})

	c.SetSkillInput("  Qwzx Studio  ")
	require.Empty(t, c.Snapshot().UI.Suggestions)
	assert.True(t, c.CommitSkillInput())
	assert.Equal(t, []string{"Qwzx Studio"}, c.Resume().Skills)
}

func TestCommitSkillInput_BlankBufferDoesNothing(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})

	c.SetSkillInput("  ")
	assert.False(t, c.CommitSkillInput())
	assert.Empty(t, c.Resume().Skills)
}

func TestDismissSuggestions_KeepsBuffer(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})

	c.SetSkillInput("pyt")
	c.DismissSuggestions()

	ui := c.Snapshot().UI
	assert.False(t, ui.SuggestionsVisible)
	assert.Equal(t, "pyt", ui.SkillInput)
	assert.Empty(t, c.Resume().Skills)
}

func TestAddSkill_ClearsInput(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})

	c.SetSkillInput("rea")
	c.AddSkill("React")

	s := c.Snapshot()
	assert.Equal(t, []string{"React"}, s.Resume.Skills)
	assert.Empty(t, s.UI.SkillInput)
	assert.False(t, s.UI.SuggestionsVisible)
}

func TestExport_UsesCurrentResume(t *testing.T) {
	c, _, exp := newTestController(&fakeEnhancer{})
	c.SetField(model.FieldFullName, "Jane Doe")

	art, err := c.Export(context.Background(), preview.Minimal)
	require.NoError(t, err)
	assert.Equal(t, "jane-doe-cv.pdf", art.FileName)
	assert.Equal(t, "Jane Doe", exp.fullName)
	assert.Equal(t, preview.Minimal, exp.doc.Template)
	assert.Contains(t, exp.doc.HTML, "Jane Doe")
}

func TestExport_FailureLeavesStateUntouched(t *testing.T) {
	c, _, exp := newTestController(&fakeEnhancer{})
	exp.err = errors.New("no chrome")
	c.SetField(model.FieldFullName, "Jane")

	_, err := c.Export(context.Background(), preview.Modern)
	assert.Error(t, err)
	assert.Equal(t, "Jane", c.Resume().FullName)
}

func TestPreview(t *testing.T) {
	c, _, _ := newTestController(&fakeEnhancer{})
	c.SetField(model.FieldFullName, "Jane")

	doc, err := c.Preview(preview.Classic)
	require.NoError(t, err)
	assert.Equal(t, preview.Classic, doc.Template)
	assert.Contains(t, doc.HTML, preview.RootID)
}
