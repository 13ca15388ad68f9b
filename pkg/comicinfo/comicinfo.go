// Package comicinfo models the ComicInfo.xml metadata document stored
// inside comic archives.
package comicinfo

import (
	"bytes"
	"encoding/json"
	"encoding/xml"

	"github.com/pkg/errors"
)

// EntryName is the archive entry the metadata document is stored under.
const EntryName = "ComicInfo.xml"

// keyOrder is the canonical element order for ComicInfo documents. Only
// keys that are set get serialized, always in this order.
var keyOrder = []string{
	"Title", "Series", "Number", "Count", "Volume",
	"AlternateSeries", "AlternateNumber", "AlternateCount",
	"Summary", "Notes", "Year", "Month", "Day",
	"Writer", "Penciller", "Inker", "Colorist", "Letterer", "CoverArtist", "Editor", "Publisher",
	"Imprint", "Genre", "Web", "PageCount", "LanguageISO", "Format", "BlackAndWhite", "Manga",
	"Characters", "Teams", "Locations", "ScanInformation", "StoryArc", "SeriesGroup", "AgeRating",
	"Pages", "CommunityRating", "MainCharacterOrTeam", "Review",
}

// Metadata is a ComicInfo document. A fresh Metadata marks the book as
// manga and carries an empty Notes blob; Notes holds free-form JSON that
// doesn't fit the ComicInfo schema.
type Metadata struct {
	data map[string]string
}

func New() *Metadata {
	return &Metadata{
		data: map[string]string{
			"Manga": "Yes",
			"Notes": "{}",
		},
	}
}

// FromMap builds a Metadata with the defaults overlaid by data.
func FromMap(data map[string]string) *Metadata {
	m := New()
	for key, value := range data {
		m.data[key] = value
	}

	return m
}

func (m *Metadata) Get(key string) (string, bool) {
	value, ok := m.data[key]
	return value, ok
}

func (m *Metadata) Set(key, value string) {
	m.data[key] = value
}

// SetIfValue sets key only when value is non-empty.
func (m *Metadata) SetIfValue(key, value string) {
	if value != "" {
		m.data[key] = value
	}
}

// PutNote stores a value in the Notes JSON blob.
func (m *Metadata) PutNote(key string, value any) error {
	notes := map[string]any{}
	if err := json.Unmarshal([]byte(m.data["Notes"]), &notes); err != nil {
		return errors.Wrap(err, "unable to parse Notes blob")
	}

	notes[key] = value

	encoded, err := json.Marshal(notes)
	if err != nil {
		return err
	}

	m.data["Notes"] = string(encoded)
	return nil
}

// Update overlays other's keys onto m.
func (m *Metadata) Update(other *Metadata) {
	for key, value := range other.data {
		m.data[key] = value
	}
}

func (m *Metadata) Copy() *Metadata {
	copied := &Metadata{data: make(map[string]string, len(m.data))}
	for key, value := range m.data {
		copied.data[key] = value
	}

	return copied
}

// Map returns a copy of the underlying key/value data.
func (m *Metadata) Map() map[string]string {
	out := make(map[string]string, len(m.data))
	for key, value := range m.data {
		out[key] = value
	}

	return out
}

// ToXML serializes the document with keys in canonical order, indented
// four spaces, ending in a newline.
func (m *Metadata) ToXML() (string, error) {
	var buf bytes.Buffer
	buf.WriteString("<ComicInfo>\n")

	for _, key := range keyOrder {
		value, ok := m.data[key]
		if !ok {
			continue
		}

		var escaped bytes.Buffer
		if err := xml.EscapeText(&escaped, []byte(value)); err != nil {
			return "", err
		}

		buf.WriteString("    <")
		buf.WriteString(key)
		buf.WriteString(">")
		buf.Write(escaped.Bytes())
		buf.WriteString("</")
		buf.WriteString(key)
		buf.WriteString(">\n")
	}

	buf.WriteString("</ComicInfo>\n")
	return buf.String(), nil
}

// ToJSON renders the document as indented JSON with the Notes blob
// expanded into an object.
func (m *Metadata) ToJSON() (string, error) {
	out := make(map[string]any, len(m.data))
	for key, value := range m.data {
		out[key] = value
	}

	if notesText, ok := m.data["Notes"]; ok {
		notes := map[string]any{}
		if err := json.Unmarshal([]byte(notesText), &notes); err != nil {
			return "", errors.Wrap(err, "unable to parse Notes blob")
		}
		out["Notes"] = notes
	}

	encoded, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

type xmlElement struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type xmlDocument struct {
	XMLName  xml.Name     `xml:"ComicInfo"`
	Elements []xmlElement `xml:",any"`
}

// ParseXML parses a ComicInfo document into a Metadata. Elements outside
// the canonical key set are still readable through Get.
func ParseXML(text []byte) (*Metadata, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(text, &doc); err != nil {
		return nil, errors.Wrap(err, "unable to parse ComicInfo document")
	}

	m := New()
	for _, elem := range doc.Elements {
		m.data[elem.XMLName.Local] = elem.Value
	}

	return m, nil
}
