package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

// ErrInvalidDocument is returned when a JSON document does not have the shape
// of a resume. Field contents are never checked.
var ErrInvalidDocument = errors.New("invalid resume document")

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// Validate checks raw JSON against the embedded resume schema.
func Validate(raw []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// Decode validates raw and returns the normalized resume it describes.
func Decode(raw []byte) (ResumeData, error) {
	if err := Validate(raw); err != nil {
		return ResumeData{}, err
	}
	var r ResumeData
	if err := json.Unmarshal(raw, &r); err != nil {
		return ResumeData{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return r.Normalize(), nil
}
