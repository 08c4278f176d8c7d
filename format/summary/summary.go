// Package summary renders the normalized item as JSON for machine consumers.
package summary

import (
	"io"

	"github.com/umn-libraries/drumcurate/format"
)

// Format implements the JSON summary format.
type Format struct{}

var (
	_ format.Format   = (*Format)(nil)
	_ format.Renderer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "summary"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Normalized item metadata and file list as JSON"
}

// Extension returns the file extension of rendered documents.
func (f *Format) Extension() string {
	return "json"
}

// MediaType returns the MIME type of rendered documents.
func (f *Format) MediaType() string {
	return "application/json"
}

// Render writes the JSON summary for doc.
func (f *Format) Render(w io.Writer, doc *format.Document, opts *format.RenderOptions) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	var date string
	if opts != nil {
		date = opts.GeneratedDate
	}
	out, err := Render(doc.Index, doc.Catalog, date)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func init() {
	format.Register(&Format{})
}
