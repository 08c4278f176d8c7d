// Package datacite provides a format plugin for DataCite metadata.
package datacite

import (
	"io"

	"github.com/umn-libraries/drumcurate/format"
)

// Version documents the DataCite schema this implementation targets.
const Version = "4.4"

// Format implements the DataCite format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format   = (*Format)(nil)
	_ format.Renderer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "datacite"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "DataCite Metadata Schema (v" + Version + ") for DOI registration"
}

// Extension returns the file extension of rendered documents.
func (f *Format) Extension() string {
	return "xml"
}

// MediaType returns the MIME type of rendered documents.
func (f *Format) MediaType() string {
	return "application/xml"
}

// Render writes the DataCite resource for doc.
func (f *Format) Render(w io.Writer, doc *format.Document, opts *format.RenderOptions) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	var year string
	if opts != nil {
		year = opts.Year
	}
	out, err := RenderWithPublisher(doc.Index, doc.Catalog, year, opts.GetPublisher())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func init() {
	format.Register(&Format{})
}
