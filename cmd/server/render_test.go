package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/preview"
)

func TestSelectedTemplates(t *testing.T) {
	all, err := selectedTemplates("ALL")
	require.NoError(t, err)
	assert.Equal(t, preview.Templates, all)

	one, err := selectedTemplates("classic")
	require.NoError(t, err)
	assert.Equal(t, []preview.Template{preview.Classic}, one)

	_, err = selectedTemplates("fancy")
	assert.ErrorIs(t, err, preview.ErrUnknownTemplate)
}

func TestRenderCommand(t *testing.T) {
	for _, k := range []string{"PORT", "ENHANCE_API_URL", "ENHANCE_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(in, []byte(`{
		"fullName": "Jane Doe",
		"email": "jane@example.com",
		"skills": ["Go", "SQL"]
	}`), 0o644))
	out := filepath.Join(dir, "out")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"render", "--in", in, "--out", out, "--template", "all"})
	require.NoError(t, rootCmd.Execute())

	for _, tpl := range preview.Templates {
		path := filepath.Join(out, "jane-doe-cv-"+string(tpl)+".html")
		assert.Contains(t, stdout.String(), path)

		f, err := os.Open(path)
		require.NoError(t, err)
		doc, err := goquery.NewDocumentFromReader(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Find("#"+preview.RootID).Length(), tpl)
		assert.Contains(t, doc.Find("h1.name").Text(), "Jane Doe", tpl)
	}
}

func TestRenderCommand_RejectsMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"skills": "Go"}`), 0o644))

	rootCmd.SetArgs([]string{"render", "--in", in, "--out", filepath.Join(dir, "out"), "--template", "modern"})
	assert.Error(t, rootCmd.Execute())
}
