package procedures

import (
	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

const (
	ProceduresDomain = "procedures"
	ControlsDomain   = "procedure_controls"
	SafeguardsDomain = "safeguards"
	TechniquesDomain = "techniques"
)

// Procedure is the root of the procedures hierarchy.
type Procedure struct {
	domain.Entity
	Code string `json:"code,omitempty"`
}

// Control belongs to a Procedure.
type Control struct {
	domain.Entity
	ProcedureID string `json:"procedureId,omitempty"`
	Code        string `json:"code,omitempty"`
}

// Safeguard belongs to a Control.
type Safeguard struct {
	domain.Entity
	ControlID string `json:"controlId,omitempty"`
	Code      string `json:"code,omitempty"`
}

// Technique belongs to a Safeguard.
type Technique struct {
	domain.Entity
	SafeguardID string      `json:"safeguardId,omitempty"`
	Code        string      `json:"code,omitempty"`
	Steps       domain.Text `json:"steps"`
}

// SafeguardContext is a safeguard with its breadcrumb ancestors.
type SafeguardContext struct {
	Safeguard Safeguard  `json:"safeguard"`
	Control   *Control   `json:"control"`
	Procedure *Procedure `json:"procedure"`
}

// TechniqueContext is a technique with its breadcrumb ancestors.
type TechniqueContext struct {
	Technique Technique  `json:"technique"`
	Safeguard *Safeguard `json:"safeguard"`
	Control   *Control   `json:"control"`
	Procedure *Procedure `json:"procedure"`
}

func DecodeProcedure(rec *content.Record) (*Procedure, error) {
	return &Procedure{Entity: rec.Entity, Code: rec.String("code")}, nil
}

func DecodeControl(rec *content.Record) (*Control, error) {
	return &Control{Entity: rec.Entity, ProcedureID: rec.ParentID, Code: rec.String("code")}, nil
}

func DecodeSafeguard(rec *content.Record) (*Safeguard, error) {
	return &Safeguard{Entity: rec.Entity, ControlID: rec.ParentID, Code: rec.String("code")}, nil
}

func DecodeTechnique(rec *content.Record) (*Technique, error) {
	return &Technique{
		Entity:      rec.Entity,
		SafeguardID: rec.ParentID,
		Code:        rec.String("code"),
		Steps:       rec.Text("steps"),
	}, nil
}
