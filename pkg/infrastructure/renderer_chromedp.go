package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"resume-builder/internal/export"
	"resume-builder/internal/preview"
)

// paperSizes in inches, portrait orientation.
var paperSizes = map[string][2]float64{
	"letter": {8.5, 11},
	"legal":  {8.5, 14},
	"a4":     {8.27, 11.69},
}

// ChromedpRasterizer prints HTML pages to PDF with headless Chrome.
type ChromedpRasterizer struct {
	execPath string
	timeout  time.Duration
	log      *zap.Logger
}

// NewChromedpRasterizer uses the Chrome binary at execPath, or the one
// chromedp finds on PATH when execPath is empty.
func NewChromedpRasterizer(execPath string, timeout time.Duration, log *zap.Logger) *ChromedpRasterizer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ChromedpRasterizer{execPath: execPath, timeout: timeout, log: log}
}

// PaperSize returns the portrait width and height in inches for the format.
// Unknown formats fall back to letter.
func PaperSize(format string) (float64, float64) {
	size, ok := paperSizes[strings.ToLower(format)]
	if !ok {
		size = paperSizes["letter"]
	}
	return size[0], size[1]
}

func (r *ChromedpRasterizer) Rasterize(ctx context.Context, html string, opts export.Options) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.timeout)
	defer cancelRun()

	// Large inline photos make data: navigation unreliable, so the page is
	// loaded from a temporary file.
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	// Chrome rotates the paper itself when printing landscape.
	width, height := PaperSize(opts.Format)
	viewW, viewH := width, height
	if opts.Landscape {
		viewW, viewH = height, width
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(int64(viewW*96), int64(viewH*96), chromedp.EmulateScale(scale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("#"+preview.RootID, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(opts.Landscape).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(opts.MarginInches).
				WithMarginBottom(opts.MarginInches).
				WithMarginLeft(opts.MarginInches).
				WithMarginRight(opts.MarginInches).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp print: %w", err)
	}

	r.log.Debug("rasterized page",
		zap.String("format", opts.Format),
		zap.Bool("landscape", opts.Landscape),
		zap.Int("bytes", len(pdfBuf)))
	return pdfBuf, nil
}
