package standards

import (
	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

const (
	CategoriesDomain = "standard_categories"
	StandardsDomain  = "standards"
	ControlsDomain   = "standard_controls"
)

// Category groups standards.
type Category struct {
	domain.Entity
	Icon string `json:"icon,omitempty"`
}

// Standard belongs to a Category.
type Standard struct {
	domain.Entity
	CategoryID string `json:"categoryId,omitempty"`
	Code       string `json:"code,omitempty"`
	Version    string `json:"version,omitempty"`
}

// Control is a requirement inside a Standard.
type Control struct {
	domain.Entity
	StandardID string      `json:"standardId,omitempty"`
	Code       string      `json:"code,omitempty"`
	Guidance   domain.Text `json:"guidance"`
}

// ControlContext is a control with its breadcrumb ancestors. Missing ancestors are
// left nil.
type ControlContext struct {
	Control  Control   `json:"control"`
	Standard *Standard `json:"standard"`
	Category *Category `json:"category"`
}

func DecodeCategory(rec *content.Record) (*Category, error) {
	return &Category{Entity: rec.Entity, Icon: rec.String("icon")}, nil
}

func DecodeStandard(rec *content.Record) (*Standard, error) {
	return &Standard{
		Entity:     rec.Entity,
		CategoryID: rec.ParentID,
		Code:       rec.String("code"),
		Version:    rec.String("version"),
	}, nil
}

func DecodeControl(rec *content.Record) (*Control, error) {
	return &Control{
		Entity:     rec.Entity,
		StandardID: rec.ParentID,
		Code:       rec.String("code"),
		Guidance:   rec.Text("guidance"),
	}, nil
}
