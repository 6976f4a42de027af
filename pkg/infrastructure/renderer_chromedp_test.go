package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaperSize(t *testing.T) {
	w, h := PaperSize("letter")
	assert.Equal(t, 8.5, w)
	assert.Equal(t, 11.0, h)

	w, h = PaperSize("A4")
	assert.Equal(t, 8.27, w)
	assert.Equal(t, 11.69, h)

	w, h = PaperSize("tabloid")
	assert.Equal(t, 8.5, w, "unknown formats fall back to letter")
	assert.Equal(t, 11.0, h)
}

func TestNewChromedpRasterizer_Defaults(t *testing.T) {
	r := NewChromedpRasterizer("", 0, nil)
	assert.NotNil(t, r.log)
	assert.Positive(t, r.timeout)
}
