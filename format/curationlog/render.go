package curationlog

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/metadata"
)

type fields struct {
	Title         string
	URI           string
	GeneratedDate string
	Files         []string
	Records       []metadata.Record
}

var logTemplate = template.Must(template.New("curationlog").Parse(logText))

// Render produces the curator's log for an item: a header naming the
// dataset, the received files with their sizes, empty sections for the
// curator to fill in and a verbatim dump of the deposited metadata.
func Render(idx *metadata.Index, cat *bitstream.Catalog, generatedDate string) (string, error) {
	if idx == nil || cat == nil {
		return "", format.ErrNilInput
	}

	originals := cat.Originals()
	files := make([]string, 0, len(originals))
	for _, e := range originals {
		size, err := e.HumanSize()
		if err != nil {
			return "", fmt.Errorf("bitstream %q: %w", e.Name, err)
		}
		files = append(files, e.Name+" ("+size+")")
	}

	data := fields{
		Title:         idx.Title(),
		URI:           idx.URI(),
		GeneratedDate: generatedDate,
		Files:         files,
		Records:       idx.Records(),
	}

	var b strings.Builder
	if err := logTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

const logText = `Curation log for: {{.Title}}
Handle: {{.URI}}
Corresponding researcher:
Curator:
Metadata log created: {{.GeneratedDate}}

*************************************************
Files received:
*************************************************
{{range .Files}}{{.}}
{{end}}
*************************************************
Changes made to files:
*************************************************

**************************************************
Metadata Changes
**************************************************

**************************************************
Correspondence Notes
**************************************************

*************************************************
Other issues
*************************************************

*************************************************
Original Metadata from Author:
*************************************************
{{range .Records}}{{.Key}} : {{.Value}}
{{end}}`
