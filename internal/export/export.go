// Package export turns a rendered preview into a downloadable PDF.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/internal/preview"
)

// ErrExportInProgress is returned when Run is called while a previous run on
// the same trigger has not finished.
var ErrExportInProgress = errors.New("export already in progress")

// FileSuffix is appended to every exported file name.
const FileSuffix = "-cv.pdf"

// FallbackName is used when the resume has no full name.
const FallbackName = "resume"

var whitespace = regexp.MustCompile(`\s+`)

// FileName derives the download name from a full name:
// "Jane Doe" -> "jane-doe-cv.pdf".
func FileName(fullName string) string {
	base := strings.ToLower(strings.TrimSpace(fullName))
	base = whitespace.ReplaceAllString(base, "-")
	if base == "" {
		base = FallbackName
	}
	return base + FileSuffix
}

// Options are the quality and page settings handed to the rasterizer.
type Options struct {
	Scale        float64
	Format       string
	Landscape    bool
	MarginInches float64
}

// DefaultOptions is letter, portrait, one inch margins, rendered at 2x.
func DefaultOptions() Options {
	return Options{
		Scale:        2,
		Format:       "letter",
		Landscape:    false,
		MarginInches: 1,
	}
}

// Rasterizer produces a PDF from a standalone HTML page.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, opts Options) ([]byte, error)
}

// History records export attempts. Implementations are best-effort.
type History interface {
	Record(ctx context.Context, ev *domain.ExportEvent) error
}

// Artifact is a finished export.
type Artifact struct {
	FileName string
	PDF      []byte
}

// Trigger runs exports for one session and exposes whether one is running.
type Trigger struct {
	rasterizer Rasterizer
	history    History
	opts       Options
	log        *zap.Logger

	running atomic.Bool
}

func NewTrigger(r Rasterizer, h History, opts Options, log *zap.Logger) *Trigger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Trigger{rasterizer: r, history: h, opts: opts, log: log}
}

// InProgress reports whether a Run is active.
func (t *Trigger) InProgress() bool {
	return t.running.Load()
}

// Run rasterizes the rendered document. The in-progress flag is reset on
// every exit path. Failures are logged and returned; nothing is retried.
func (t *Trigger) Run(ctx context.Context, doc preview.Document, fullName string) (*Artifact, error) {
	if !t.running.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer t.running.Store(false)

	name := FileName(fullName)
	ev := &domain.ExportEvent{
		ID:        uuid.New(),
		FileName:  name,
		Template:  string(doc.Template),
		Status:    domain.ExportStatusPending,
		CreatedAt: time.Now(),
	}

	pdf, err := t.rasterizer.Rasterize(ctx, doc.HTML, t.opts)
	if err == nil && !bytes.HasPrefix(pdf, []byte("%PDF")) {
		err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
	}

	ev.UpdatedAt = time.Now()
	if err != nil {
		ev.Status = domain.ExportStatusFailed
		ev.Error = err.Error()
		t.record(ctx, ev)
		t.log.Error("export failed",
			zap.String("file", name),
			zap.String("template", ev.Template),
			zap.Error(err))
		return nil, fmt.Errorf("export %s: %w", name, err)
	}

	ev.Status = domain.ExportStatusCompleted
	ev.SizeBytes = len(pdf)
	t.record(ctx, ev)
	t.log.Info("export completed",
		zap.String("file", name),
		zap.String("template", ev.Template),
		zap.Int("bytes", len(pdf)))
	return &Artifact{FileName: name, PDF: pdf}, nil
}

func (t *Trigger) record(ctx context.Context, ev *domain.ExportEvent) {
	if t.history == nil {
		return
	}
	if err := t.history.Record(ctx, ev); err != nil {
		t.log.Warn("unable to record export (non-fatal)", zap.Error(err))
	}
}
