package protection

import (
	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

const (
	CategoriesDomain    = "protect_categories"
	SubCategoriesDomain = "protect_subcategories"
	ControlsDomain      = "protect_controls"
	StepsDomain         = "protect_control_steps"
)

// Category is a personal-protection topic.
type Category struct {
	domain.Entity
	Icon string `json:"icon,omitempty"`
}

// SubCategory belongs to a Category.
type SubCategory struct {
	domain.Entity
	CategoryID string `json:"categoryId,omitempty"`
}

// Control is a protective measure inside a SubCategory.
type Control struct {
	domain.Entity
	SubCategoryID string `json:"subCategoryId,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// ControlStep is one numbered instruction of a Control.
type ControlStep struct {
	domain.Entity
	ControlID  string `json:"controlId,omitempty"`
	StepNumber int    `json:"stepNumber"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// ControlContext is a control with its breadcrumb ancestors.
type ControlContext struct {
	Control     Control      `json:"control"`
	SubCategory *SubCategory `json:"subCategory"`
	Category    *Category    `json:"category"`
}

func DecodeCategory(rec *content.Record) (*Category, error) {
	return &Category{Entity: rec.Entity, Icon: rec.String("icon")}, nil
}

func DecodeSubCategory(rec *content.Record) (*SubCategory, error) {
	return &SubCategory{Entity: rec.Entity, CategoryID: rec.ParentID}, nil
}

func DecodeControl(rec *content.Record) (*Control, error) {
	return &Control{Entity: rec.Entity, SubCategoryID: rec.ParentID, ImageURL: rec.String("image_url")}, nil
}

// DecodeControlStep falls back to the record position when no explicit step number
// is stored.
func DecodeControlStep(rec *content.Record) (*ControlStep, error) {
	step := rec.Int("step_number")
	if step == 0 {
		step = rec.Position
	}
	return &ControlStep{
		Entity:     rec.Entity,
		ControlID:  rec.ParentID,
		StepNumber: step,
		ImageURL:   rec.String("image_url"),
	}, nil
}
