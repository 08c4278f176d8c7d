package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/umn-libraries/drumcurate/format"
	_ "github.com/umn-libraries/drumcurate/format/curationlog"
	_ "github.com/umn-libraries/drumcurate/format/datacite"
	_ "github.com/umn-libraries/drumcurate/format/readme"
	_ "github.com/umn-libraries/drumcurate/format/summary"
	"github.com/umn-libraries/drumcurate/rules"
)

const metadataJSON = `[
	{"key": "dc.title", "value": "Lake ice phenology", "language": null},
	{"key": "dc.contributor.author", "value": "Smith, Jane", "language": "en_US"},
	{"key": "dc.identifier.uri", "value": "https://hdl.handle.net/11299/220269", "language": null}
]`

const bitstreamsJSON = `[
	{"name": "ice.csv", "sizeBytes": 2048, "bundleName": "ORIGINAL", "sequenceId": 1},
	{"name": "license.txt", "sizeBytes": 1700, "bundleName": "LICENSE", "sequenceId": 2}
]`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	md := filepath.Join(dir, "metadata.json")
	bs := filepath.Join(dir, "bitstreams.json")
	if err := os.WriteFile(md, []byte(metadataJSON), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bs, []byte(bitstreamsJSON), 0644); err != nil {
		t.Fatal(err)
	}
	return md, bs
}

func TestReadSource(t *testing.T) {
	md, bs := writeFixtures(t)

	src, err := readSource(md, bs)
	if err != nil {
		t.Fatalf("readSource failed: %v", err)
	}
	if src.suffix != "220269" {
		t.Errorf("suffix = %q, want 220269", src.suffix)
	}
	if got := src.doc.Index.Title(); got != "Lake ice phenology" {
		t.Errorf("title = %q", got)
	}
	if got := len(src.doc.Catalog.Originals()); got != 1 {
		t.Errorf("originals = %d, want 1", got)
	}

	// the bitstream listing is optional
	src, err = readSource(md, "")
	if err != nil {
		t.Fatalf("readSource without bitstreams failed: %v", err)
	}
	if got := len(src.doc.Catalog.All()); got != 0 {
		t.Errorf("bitstreams = %d, want 0", got)
	}

	if _, err := readSource(filepath.Join(t.TempDir(), "missing.json"), ""); err == nil {
		t.Error("expected error for missing metadata file")
	}
}

func TestSuffixForWithoutHandle(t *testing.T) {
	doc, err := format.NewDocument(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := suffixFor(doc.Index); got != "item" {
		t.Errorf("suffixFor = %q, want item", got)
	}
}

func TestOutputName(t *testing.T) {
	opts := &format.RenderOptions{GeneratedDate: "2022-06-03", Year: "2022"}
	tests := []struct {
		format string
		want   string
	}{
		{"readme", "Readme_220269.txt"},
		{"curationlog", "metadata_220269_20220603.txt"},
		{"datacite", "doi_metadata_220269.xml"},
		{"summary", "summary_220269.json"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := format.GetRenderer(tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if got := outputName(r, "220269", opts); got != tt.want {
				t.Errorf("outputName(%s) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestRenderToFiles(t *testing.T) {
	md, bs := writeFixtures(t)
	src, err := readSource(md, bs)
	if err != nil {
		t.Fatal(err)
	}
	opts := &format.RenderOptions{GeneratedDate: "2022-06-03", Year: "2022"}

	dir := t.TempDir()
	for _, name := range curationFormats {
		r, err := format.GetRenderer(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := renderTo(r, src, opts, filepath.Join(dir, outputName(r, src.suffix, opts))); err != nil {
			t.Fatalf("renderTo(%s) failed: %v", name, err)
		}
	}

	for _, file := range []string{"Readme_220269.txt", "metadata_220269_20220603.txt", "doi_metadata_220269.xml"} {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			t.Errorf("missing %s: %v", file, err)
			continue
		}
		if !strings.Contains(string(data), "Lake ice phenology") {
			t.Errorf("%s does not mention the title", file)
		}
	}
}

func TestRenderToLeavesNoFileOnError(t *testing.T) {
	r, err := format.GetRenderer("readme")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "Readme_1.txt")

	err = renderTo(r, &source{doc: &format.Document{}}, &format.RenderOptions{}, path)
	if !errors.Is(err, format.ErrNilInput) {
		t.Fatalf("renderTo error = %v, want ErrNilInput", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failed render: %v", statErr)
	}
}

func TestPrintInspection(t *testing.T) {
	md, bs := writeFixtures(t)
	src, err := readSource(md, bs)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printInspection(&buf, src.doc); err != nil {
		t.Fatalf("printInspection failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Lake ice phenology", "Jane Smith", "ice.csv (2 KB)", "Total size"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspection missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "license.txt") {
		t.Error("inspection lists a non-ORIGINAL bitstream")
	}
}

func TestPrintFindings(t *testing.T) {
	var buf bytes.Buffer
	errs := printFindings(&buf, []rules.Finding{
		{Rule: "missing-title", Severity: rules.SeverityError, Message: "no title"},
		{Rule: "missing-abstract", Severity: rules.SeverityWarning, Message: "no abstract"},
	})
	if errs != 1 {
		t.Errorf("error count = %d, want 1", errs)
	}
	out := buf.String()
	for _, want := range []string{"missing-title", "no title", "missing-abstract"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if errs := printFindings(&buf, nil); errs != 0 || !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("empty findings = %d %q", errs, buf.String())
	}
}
