package notion

import (
	"github.com/noobdev/site-api/internal/models"
)

// Wire types for the subset of the Notion REST API this service consumes:
// database queries and block-children listing.

type queryRequest struct {
	Filter *queryFilter `json:"filter,omitempty"`
	Sorts  []querySort  `json:"sorts,omitempty"`
}

type queryFilter struct {
	Property string          `json:"property"`
	Checkbox *checkboxEquals `json:"checkbox,omitempty"`
	RichText *richTextEquals `json:"rich_text,omitempty"`
}

type checkboxEquals struct {
	Equals bool `json:"equals"`
}

type richTextEquals struct {
	Equals string `json:"equals"`
}

type querySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryResponse struct {
	Results []page `json:"results"`
}

type page struct {
	ID         string              `json:"id"`
	Cover      *cover              `json:"cover"`
	Properties map[string]property `json:"properties"`
}

type cover struct {
	Type     string          `json:"type"`
	External *models.FileRef `json:"external"`
	File     *models.FileRef `json:"file"`
}

// property is the union of the typed property values the mapping table
// cares about. Lookup is by name, never by position.
type property struct {
	Type     string            `json:"type"`
	Title    []models.RichText `json:"title"`
	RichText []models.RichText `json:"rich_text"`
	Select   *selectValue      `json:"select"`
	Date     *dateValue        `json:"date"`
	Checkbox bool              `json:"checkbox"`
}

type selectValue struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

type blockChildrenResponse struct {
	Results []models.Block `json:"results"`
}

// text returns the first plain-text span of a title or rich_text property,
// or "" when the property is absent or empty.
func (p page) text(name string) string {
	prop, ok := p.Properties[name]
	if !ok {
		return ""
	}
	if len(prop.Title) > 0 {
		return prop.Title[0].PlainText
	}
	if len(prop.RichText) > 0 {
		return prop.RichText[0].PlainText
	}
	return ""
}

func (p page) selectName(name string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Select == nil {
		return ""
	}
	return prop.Select.Name
}

func (p page) dateStart(name string) string {
	prop, ok := p.Properties[name]
	if !ok || prop.Date == nil {
		return ""
	}
	return prop.Date.Start
}

// coverURL resolves the page cover to an external-or-hosted URL.
func (p page) coverURL() string {
	if p.Cover == nil {
		return ""
	}
	if p.Cover.External != nil && p.Cover.External.URL != "" {
		return p.Cover.External.URL
	}
	if p.Cover.File != nil {
		return p.Cover.File.URL
	}
	return ""
}
