package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	infra "resume-builder/pkg/infrastructure"
)

var (
	renderIn       string
	renderTemplate string
	renderOut      string
	renderPDF      bool

	reportMu sync.Mutex
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON document to HTML (and optionally PDF)",
	Long: `Reads a resume document, checks its shape and writes one HTML page per
selected template into the output directory. With --pdf each page is also
printed to PDF through headless Chrome.

Example:
  resume-builder render --in resume.json --template all --out out --pdf`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderIn, "in", "resume.json", "resume JSON document")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "all", "all, modern, classic or minimal")
	renderCmd.Flags().StringVar(&renderOut, "out", "out", "output directory")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "also export PDF files")
	rootCmd.AddCommand(renderCmd)
}

func selectedTemplates(name string) ([]preview.Template, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return preview.Templates, nil
	}
	t, err := preview.ParseTemplate(name)
	if err != nil {
		return nil, err
	}
	return []preview.Template{t}, nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(renderIn)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	data, err := model.Decode(raw)
	if err != nil {
		return err
	}
	templates, err := selectedTemplates(renderTemplate)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(renderOut, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var rasterizer export.Rasterizer
	if renderPDF {
		rasterizer = infra.NewChromedpRasterizer(cfg.Export.ChromePath, cfg.ExportTimeout(), logger)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, t := range templates {
		t := t
		g.Go(func() error {
			return renderOne(ctx, cmd, data, t, rasterizer)
		})
	}
	return g.Wait()
}

func renderOne(ctx context.Context, cmd *cobra.Command, data model.ResumeData, t preview.Template, rasterizer export.Rasterizer) error {
	doc, err := preview.Render(data, t)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(export.FileName(data.FullName), ".pdf")

	htmlPath := filepath.Join(renderOut, fmt.Sprintf("%s-%s.html", base, t))
	if err := os.WriteFile(htmlPath, []byte(doc.HTML), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", htmlPath, err)
	}
	report(cmd, htmlPath)

	if rasterizer == nil {
		return nil
	}
	art, err := export.NewTrigger(rasterizer, nil, cfg.ExportOptions(), logger).Run(ctx, doc, data.FullName)
	if err != nil {
		return err
	}
	pdfPath := filepath.Join(renderOut, fmt.Sprintf("%s-%s.pdf", base, t))
	if err := os.WriteFile(pdfPath, art.PDF, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", pdfPath, err)
	}
	report(cmd, pdfPath)
	return nil
}

func report(cmd *cobra.Command, path string) {
	reportMu.Lock()
	defer reportMu.Unlock()
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
}
