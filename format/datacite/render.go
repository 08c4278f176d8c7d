package datacite

import (
	"encoding/xml"
	"fmt"

	"github.com/umn-libraries/drumcurate/bitstream"
	"github.com/umn-libraries/drumcurate/format"
	"github.com/umn-libraries/drumcurate/helpers"
	"github.com/umn-libraries/drumcurate/metadata"
)

const (
	namespace      = "http://datacite.org/schema/kernel-4"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = namespace + " https://schema.datacite.org/meta/kernel-4.4/metadata.xsd"
)

// Render produces a DataCite resource for an item using the default
// publisher.
func Render(idx *metadata.Index, cat *bitstream.Catalog, year string) (string, error) {
	return RenderWithPublisher(idx, cat, year, format.DefaultPublisher)
}

// RenderWithPublisher is Render with an explicit publisher name.
func RenderWithPublisher(idx *metadata.Index, cat *bitstream.Catalog, year, publisher string) (string, error) {
	if idx == nil || cat == nil {
		return "", format.ErrNilInput
	}

	output, err := xml.MarshalIndent(toXML(idx, year, publisher), "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshaling datacite resource: %w", err)
	}
	return xml.Header + string(output) + "\n", nil
}

func toXML(idx *metadata.Index, year, publisher string) *XMLResource {
	res := &XMLResource{
		Xmlns:             namespace,
		XmlnsXsi:          xsiNamespace,
		XsiSchemaLocation: schemaLocation,
		Identifier:        XMLIdentifier{IdentifierType: "DOI"},
		Titles:            []XMLTitle{{Value: idx.Title()}},
		Publisher:         publisher,
		PublicationYear:   year,
		ResourceType:      XMLResourceType{ResourceTypeGeneral: "Dataset"},
		Descriptions: []XMLDescription{
			{DescriptionType: "Abstract", Value: idx.Abstract()},
		},
	}

	// Creators split on ", " rather than "," so "Smith,Jane" keeps the
	// whole string as the family name here while the README splits it.
	for _, a := range idx.Authors() {
		name := helpers.SplitDataCiteName(a.Raw)
		res.Creators.Creator = append(res.Creators.Creator, XMLCreator{
			CreatorName: XMLCreatorName{NameType: "Personal", Value: a.Raw},
			GivenName:   name.Given,
			FamilyName:  name.Family,
		})
	}

	return res
}

// XMLResource is the root element of a DataCite kernel-4 record.
type XMLResource struct {
	XMLName           xml.Name         `xml:"resource"`
	XmlnsXsi          string           `xml:"xmlns:xsi,attr"`
	Xmlns             string           `xml:"xmlns,attr"`
	XsiSchemaLocation string           `xml:"xsi:schemaLocation,attr"`
	Identifier        XMLIdentifier    `xml:"identifier"`
	Creators          XMLCreators      `xml:"creators"`
	Titles            []XMLTitle       `xml:"titles>title"`
	Publisher         string           `xml:"publisher"`
	PublicationYear   string           `xml:"publicationYear"`
	ResourceType      XMLResourceType  `xml:"resourceType"`
	Sizes             string           `xml:"sizes"`
	Formats           string           `xml:"formats"`
	Version           string           `xml:"version"`
	Descriptions      []XMLDescription `xml:"descriptions>description"`
}

// XMLCreators is kept as its own element so that an item without authors
// still carries an empty <creators/>.
type XMLCreators struct {
	Creator []XMLCreator `xml:"creator"`
}

type XMLIdentifier struct {
	IdentifierType string `xml:"identifierType,attr"`
	Value          string `xml:",chardata"`
}

type XMLCreator struct {
	CreatorName XMLCreatorName `xml:"creatorName"`
	GivenName   string         `xml:"givenName"`
	FamilyName  string         `xml:"familyName"`
}

type XMLCreatorName struct {
	NameType string `xml:"nameType,attr,omitempty"`
	Value    string `xml:",chardata"`
}

type XMLTitle struct {
	Value string `xml:",chardata"`
}

type XMLResourceType struct {
	ResourceTypeGeneral string `xml:"resourceTypeGeneral,attr"`
	Value               string `xml:",chardata"`
}

type XMLDescription struct {
	DescriptionType string `xml:"descriptionType,attr"`
	Value           string `xml:",chardata"`
}
