// Package readme renders a depositor-completable README for a dataset.
package readme

import (
	"io"

	"github.com/umn-libraries/drumcurate/format"
)

// Format implements the README format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format   = (*Format)(nil)
	_ format.Renderer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "readme"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Dataset README template prefilled from deposit metadata"
}

// Extension returns the file extension of rendered documents.
func (f *Format) Extension() string {
	return "txt"
}

// MediaType returns the MIME type of rendered documents.
func (f *Format) MediaType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the README for doc.
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
	_, err = io.WriteString(w, out)
	return err
}

func init() {
	format.Register(&Format{})
}
