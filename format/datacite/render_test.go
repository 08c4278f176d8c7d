package datacite

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/metadata"
)

type parsedResource struct {
	Identifier struct {
		Type  string `xml:"identifierType,attr"`
		Value string `xml:",chardata"`
	} `xml:"identifier"`
	Creators []struct {
		Name struct {
			NameType string `xml:"nameType,attr"`
			Value    string `xml:",chardata"`
		} `xml:"creatorName"`
		Given  string `xml:"givenName"`
		Family string `xml:"familyName"`
	} `xml:"creators>creator"`
	Titles       []string `xml:"titles>title"`
	Publisher    string   `xml:"publisher"`
	Year         string   `xml:"publicationYear"`
	ResourceType struct {
		General string `xml:"resourceTypeGeneral,attr"`
	} `xml:"resourceType"`
	Descriptions []struct {
		Type  string `xml:"descriptionType,attr"`
		Value string `xml:",chardata"`
	} `xml:"descriptions>description"`
}

func render(t *testing.T, records []metadata.Record) string {
	t.Helper()
	cat, err := bitstream.NewCatalog(nil)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	out, err := Render(metadata.NewIndex(records), cat, "2022")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return out
}

func parse(t *testing.T, out string) parsedResource {
	t.Helper()
	var res parsedResource
	if err := xml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not well-formed XML: %v\n%s", err, out)
	}
	return res
}

func TestRender(t *testing.T) {
	out := render(t, []metadata.Record{
		{Key: "dc.title", Value: "Lake ice phenology"},
		{Key: "dc.contributor.author", Value: "Smith, Jane"},
		{Key: "dc.contributor.author", Value: "Doe, John Q."},
		{Key: "dc.description.abstract", Value: "Ice-on and ice-off dates."},
		{Key: "dc.subject", Value: "ignored"},
	})

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`+"\n<resource ") {
		t.Errorf("unexpected document start: %q", out[:60])
	}
	for _, want := range []string{
		`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`,
		`xmlns="http://datacite.org/schema/kernel-4"`,
		`xsi:schemaLocation="http://datacite.org/schema/kernel-4 https://schema.datacite.org/meta/kernel-4.4/metadata.xsd"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("root element missing %s", want)
		}
	}

	res := parse(t, out)
	if res.Identifier.Type != "DOI" || res.Identifier.Value != "" {
		t.Errorf("identifier = %+v, want empty DOI", res.Identifier)
	}
	if len(res.Creators) != 2 {
		t.Fatalf("creators = %d, want 2", len(res.Creators))
	}
	first := res.Creators[0]
	if first.Name.NameType != "Personal" || first.Name.Value != "Smith, Jane" {
		t.Errorf("creatorName = %+v", first.Name)
	}
	if first.Given != "Jane" || first.Family != "Smith" {
		t.Errorf("creator split = %q/%q, want Jane/Smith", first.Given, first.Family)
	}
	if res.Creators[1].Given != "John Q." || res.Creators[1].Family != "Doe" {
		t.Errorf("second creator split = %q/%q", res.Creators[1].Given, res.Creators[1].Family)
	}
	if len(res.Titles) != 1 || res.Titles[0] != "Lake ice phenology" {
		t.Errorf("titles = %q", res.Titles)
	}
	if res.Publisher != format.DefaultPublisher {
		t.Errorf("publisher = %q", res.Publisher)
	}
	if res.Year != "2022" {
		t.Errorf("publicationYear = %q, want 2022", res.Year)
	}
	if res.ResourceType.General != "Dataset" {
		t.Errorf("resourceTypeGeneral = %q", res.ResourceType.General)
	}
	if len(res.Descriptions) != 1 || res.Descriptions[0].Type != "Abstract" || res.Descriptions[0].Value != "Ice-on and ice-off dates." {
		t.Errorf("descriptions = %+v", res.Descriptions)
	}
}

func TestRenderNoAuthors(t *testing.T) {
	out := render(t, nil)

	if !strings.Contains(out, "<creators></creators>") {
		t.Errorf("expected empty creators element:\n%s", out)
	}

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("malformed XML: %v", err)
		}
	}
}

func TestRenderEscapesValues(t *testing.T) {
	out := render(t, []metadata.Record{
		{Key: "dc.title", Value: "Salt & <Pepper>"},
		{Key: "dc.description.abstract", Value: "a < b && c > d"},
	})

	if !strings.Contains(out, "Salt &amp; &lt;Pepper&gt;") {
		t.Errorf("title not escaped:\n%s", out)
	}
	res := parse(t, out)
	if res.Titles[0] != "Salt & <Pepper>" {
		t.Errorf("title round trip = %q", res.Titles[0])
	}
	if res.Descriptions[0].Value != "a < b && c > d" {
		t.Errorf("abstract round trip = %q", res.Descriptions[0].Value)
	}
}

// The DataCite creator split requires ", " while the README accepts a bare
// comma, so the two disagree on "Smith,Jane".
func TestRenderCommaWithoutSpace(t *testing.T) {
	records := []metadata.Record{{Key: "dc.contributor.author", Value: "Smith,Jane"}}
	res := parse(t, render(t, records))

	if len(res.Creators) != 1 {
		t.Fatalf("creators = %d, want 1", len(res.Creators))
	}
	if res.Creators[0].Family != "Smith,Jane" || res.Creators[0].Given != "" {
		t.Errorf("creator split = %q/%q, want %q/%q", res.Creators[0].Family, res.Creators[0].Given, "Smith,Jane", "")
	}

	if got := metadata.NewIndex(records).Authors()[0].DisplayName(); got != "Jane Smith" {
		t.Errorf("README display name = %q, want %q", got, "Jane Smith")
	}
}

func TestRenderNilInput(t *testing.T) {
	if _, err := Render(nil, nil, "2022"); !errors.Is(err, format.ErrNilInput) {
		t.Fatalf("Render error = %v, want ErrNilInput", err)
	}
}

func TestFormatRenderPublisher(t *testing.T) {
	doc, err := format.NewDocument([]metadata.Record{{Key: "dc.title", Value: "T"}}, nil)
	if err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}

	var buf bytes.Buffer
	opts := &format.RenderOptions{Year: "2019", Publisher: "Test Press"}
	if err := (&Format{}).Render(&buf, doc, opts); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	res := parse(t, buf.String())
	if res.Publisher != "Test Press" || res.Year != "2019" {
		t.Errorf("publisher/year = %q/%q", res.Publisher, res.Year)
	}
}
