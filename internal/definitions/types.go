package definitions

import (
	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

const (
	CategoriesDomain  = "definition_categories"
	DefinitionsDomain = "definitions"
)

// Category groups glossary definitions.
type Category struct {
	domain.Entity
	Icon string `json:"icon,omitempty"`
}

// Definition is one glossary term.
type Definition struct {
	domain.Entity
	CategoryID string      `json:"categoryId,omitempty"`
	Example    domain.Text `json:"example"`
	Source     domain.Text `json:"source"`
}

// DecodeCategory maps a stored record onto Category.
func DecodeCategory(rec *content.Record) (*Category, error) {
	return &Category{Entity: rec.Entity, Icon: rec.String("icon")}, nil
}

// DecodeDefinition maps a stored record onto Definition.
func DecodeDefinition(rec *content.Record) (*Definition, error) {
	return &Definition{
		Entity:     rec.Entity,
		CategoryID: rec.ParentID,
		Example:    rec.Text("example"),
		Source:     rec.Text("source"),
	}, nil
}
