package readme

import (
	"strings"
	"text/template"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/metadata"
)

// fields is the data substituted into readmeTemplate. Every placeholder in
// the template names one of these fields.
type fields struct {
	GeneratedDate string
	Title         string
	Authors       string
	DatePublished string
	DateCollected string
	Spatial       string
	Funding       string
	Abstract      string
	License       string
	Publications  string
	FileList      string
	Spreadsheets  []string
}

var readmeTemplate = template.Must(template.New("readme").Parse(readmeText))

// Render produces the README text for an item. Missing metadata is
// rendered as empty text; the boilerplate is always complete.
func Render(idx *metadata.Index, cat *bitstream.Catalog, generatedDate string) (string, error) {
	if idx == nil || cat == nil {
		return "", format.ErrNilInput
	}

	data := fields{
		GeneratedDate: generatedDate,
		Title:         idx.Title(),
		Authors:       idx.AuthorBlock(),
		DatePublished: idx.DatePublished(),
		DateCollected: idx.DateCollectedString(),
		Spatial:       idx.Spatial(),
		Funding:       idx.FundingBlock(),
		Abstract:      idx.Abstract(),
		License:       idx.LicenseString(),
		Publications:  idx.PublicationsBlock(),
		FileList:      cat.FileListBlock(),
		Spreadsheets:  cat.SpreadsheetNames(),
	}

	var b strings.Builder
	if err := readmeTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

const readmeText = `This readme.txt file was generated on {{.GeneratedDate}} by <Name>

-------------------
GENERAL INFORMATION
-------------------

1. Title of Dataset: {{.Title}}

2. Author Information

{{.Authors}}
3. Date published or finalized for release: {{.DatePublished}}


4. Date of data collection (single date, range, approximate date): {{.DateCollected}}


5. Geographic location of data collection (where was data collected?): {{.Spatial}}


6. Information about funding sources that supported the collection of the data:
{{.Funding}}

7. Overview of the data (abstract):
{{.Abstract}}




--------------------------
SHARING/ACCESS INFORMATION
--------------------------

1. Licenses/restrictions placed on the data: {{.License}}

2. Links to publications that cite or use the data:
{{.Publications}}
3. Was data derived from another source?
	If yes, list source(s):

4. Terms of Use: Data Repository for the U of Minnesota (DRUM) By using these files, users agree to the Terms of Use. https://conservancy.umn.edu/pages/drum/policies/#terms-of-use




---------------------
DATA & FILE OVERVIEW
---------------------

File List

{{.FileList}}

2. Relationship between files:


--------------------------
METHODOLOGICAL INFORMATION
--------------------------

1. Description of methods used for collection/generation of data:


2. Methods for processing the data: <describe how the submitted data were generated from the raw or collected data>


3. Instrument- or software-specific information needed to interpret the data:


4. Standards and calibration information, if appropriate:


5. Environmental/experimental conditions:


6. Describe any quality-assurance procedures performed on the data:


7. People involved with sample collection, processing, analysis and/or submission:



{{range .Spreadsheets}}-----------------------------------------
DATA-SPECIFIC INFORMATION FOR: {{.}}
-----------------------------------------

1. Number of variables:

2. Number of cases/rows:

3. Missing data codes:

	Code/symbol	Definition
	Code/symbol	Definition

4. Variable List

	A. Name: <variable name>
	   Description: <description of the variable>
		Value labels if appropriate

	B. Name: <variable name>
	   Description: <description of the variable>
		Value labels if appropriate



{{end}}`
