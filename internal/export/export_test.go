package export

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/preview"
)

type fakeRasterizer struct {
	pdf     []byte
	err     error
	gotHTML string
	gotOpts Options
	block   chan struct{}
	started chan struct{}
}

func (f *fakeRasterizer) Rasterize(_ context.Context, html string, opts Options) ([]byte, error) {
	f.gotHTML = html
	f.gotOpts = opts
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	return f.pdf, f.err
}

type memHistory struct {
	mu     sync.Mutex
	events []domain.ExportEvent
	err    error
}

func (m *memHistory) Record(_ context.Context, ev *domain.ExportEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *ev)
	return m.err
}

var doc = preview.Document{Template: preview.Classic, HTML: "<div id=\"resume-preview\">Jane</div>"}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":           "jane-doe-cv.pdf",
		"  Jane   van  Doe ": "jane-van-doe-cv.pdf",
		"JANE\tDOE":          "jane-doe-cv.pdf",
		"":                   "resume-cv.pdf",
		"   ":                "resume-cv.pdf",
		"Zoë":                "zoë-cv.pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, FileName(in), "FileName(%q)", in)
	}
}

func TestRun_Success(t *testing.T) {
	r := &fakeRasterizer{pdf: []byte("%PDF-1.7 fake")}
	h := &memHistory{}
	trg := NewTrigger(r, h, DefaultOptions(), nil)

	art, err := trg.Run(context.Background(), doc, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "jane-doe-cv.pdf", art.FileName)
	assert.Equal(t, []byte("%PDF-1.7 fake"), art.PDF)
	assert.Equal(t, doc.HTML, r.gotHTML)
	assert.Equal(t, DefaultOptions(), r.gotOpts)
	assert.False(t, trg.InProgress())

	require.Len(t, h.events, 1)
	assert.Equal(t, domain.ExportStatusCompleted, h.events[0].Status)
	assert.Equal(t, "classic", h.events[0].Template)
	assert.Equal(t, len(art.PDF), h.events[0].SizeBytes)
}

func TestRun_RasterizerFailureResetsFlag(t *testing.T) {
	r := &fakeRasterizer{err: errors.New("chrome not found")}
	h := &memHistory{}
	trg := NewTrigger(r, h, DefaultOptions(), nil)

	art, err := trg.Run(context.Background(), doc, "Jane Doe")
	assert.Nil(t, art)
	assert.ErrorContains(t, err, "chrome not found")
	assert.False(t, trg.InProgress())

	require.Len(t, h.events, 1)
	assert.Equal(t, domain.ExportStatusFailed, h.events[0].Status)
	assert.Equal(t, "chrome not found", h.events[0].Error)
}

func TestRun_RejectsNonPDFOutput(t *testing.T) {
	trg := NewTrigger(&fakeRasterizer{pdf: []byte("<html>")}, nil, DefaultOptions(), nil)

	_, err := trg.Run(context.Background(), doc, "")
	assert.ErrorContains(t, err, "invalid PDF output")
	assert.False(t, trg.InProgress())
}

func TestRun_HistoryFailureIsNonFatal(t *testing.T) {
	h := &memHistory{err: errors.New("db down")}
	trg := NewTrigger(&fakeRasterizer{pdf: []byte("%PDF")}, h, DefaultOptions(), nil)

	_, err := trg.Run(context.Background(), doc, "Jane")
	assert.NoError(t, err)
}

func TestRun_InProgressRejectsSecondRun(t *testing.T) {
	r := &fakeRasterizer{pdf: []byte("%PDF"), block: make(chan struct{}), started: make(chan struct{})}
	trg := NewTrigger(r, nil, DefaultOptions(), nil)

	done := make(chan error, 1)
	go func() {
		_, err := trg.Run(context.Background(), doc, "Jane")
		done <- err
	}()

	<-r.started
	assert.True(t, trg.InProgress())

	_, err := trg.Run(context.Background(), doc, "Jane")
	assert.ErrorIs(t, err, ErrExportInProgress)

	close(r.block)
	assert.NoError(t, <-done)
	assert.False(t, trg.InProgress())
}
