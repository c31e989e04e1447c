package procedures

import (
	"context"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// Service exposes the procedures -> controls -> safeguards -> techniques hierarchy.
type Service interface {
	GetProcedures(ctx context.Context, q domain.ListQuery) (domain.Page[Procedure], error)
	GetProcedureByID(ctx context.Context, id string) (*Procedure, error)
	GetProcedureBySlug(ctx context.Context, slug string) (*Procedure, error)

	GetControlsByProcedure(ctx context.Context, procedureID string, q domain.ListQuery) (domain.Page[Control], error)
	GetControlByID(ctx context.Context, id string) (*Control, error)

	GetSafeguardsByControl(ctx context.Context, controlID string, q domain.ListQuery) (domain.Page[Safeguard], error)
	GetSafeguardByID(ctx context.Context, id string) (*Safeguard, error)
	GetSafeguardBySlug(ctx context.Context, slug string) (*Safeguard, error)

	GetTechniquesBySafeguard(ctx context.Context, safeguardID string, q domain.ListQuery) (domain.Page[Technique], error)
	GetTechniqueByID(ctx context.Context, id string) (*Technique, error)
	GetTechniqueBySlug(ctx context.Context, slug string) (*Technique, error)

	SafeguardContext(ctx context.Context, safeguardID string) (*SafeguardContext, error)
	TechniqueContext(ctx context.Context, techniqueID string) (*TechniqueContext, error)
}

type service struct {
	procedures *content.Service[Procedure]
	controls   *content.Service[Control]
	safeguards *content.Service[Safeguard]
	techniques *content.Service[Technique]
}

// NewService binds the procedures repositories to deps.Store.
func NewService(deps content.Dependencies) Service {
	return &service{
		procedures: content.Bind(deps, ProceduresDomain, "procedure", DecodeProcedure),
		controls:   content.Bind(deps, ControlsDomain, "procedure control", DecodeControl),
		safeguards: content.Bind(deps, SafeguardsDomain, "safeguard", DecodeSafeguard),
		techniques: content.Bind(deps, TechniquesDomain, "technique", DecodeTechnique),
	}
}

func (s *service) GetProcedures(ctx context.Context, q domain.ListQuery) (domain.Page[Procedure], error) {
	return s.procedures.List(ctx, q)
}

func (s *service) GetProcedureByID(ctx context.Context, id string) (*Procedure, error) {
	return s.procedures.Get(ctx, id)
}

func (s *service) GetProcedureBySlug(ctx context.Context, slug string) (*Procedure, error) {
	return s.procedures.GetBySlug(ctx, slug)
}

func (s *service) GetControlsByProcedure(ctx context.Context, procedureID string, q domain.ListQuery) (domain.Page[Control], error) {
	return s.controls.ListByParent(ctx, procedureID, q)
}

func (s *service) GetControlByID(ctx context.Context, id string) (*Control, error) {
	return s.controls.Get(ctx, id)
}

func (s *service) GetSafeguardsByControl(ctx context.Context, controlID string, q domain.ListQuery) (domain.Page[Safeguard], error) {
	return s.safeguards.ListByParent(ctx, controlID, q)
}

func (s *service) GetSafeguardByID(ctx context.Context, id string) (*Safeguard, error) {
	return s.safeguards.Get(ctx, id)
}

func (s *service) GetSafeguardBySlug(ctx context.Context, slug string) (*Safeguard, error) {
	return s.safeguards.GetBySlug(ctx, slug)
}

func (s *service) GetTechniquesBySafeguard(ctx context.Context, safeguardID string, q domain.ListQuery) (domain.Page[Technique], error) {
	return s.techniques.ListByParent(ctx, safeguardID, q)
}

func (s *service) GetTechniqueByID(ctx context.Context, id string) (*Technique, error) {
	return s.techniques.Get(ctx, id)
}

func (s *service) GetTechniqueBySlug(ctx context.Context, slug string) (*Technique, error) {
	return s.techniques.GetBySlug(ctx, slug)
}

// SafeguardContext resolves the safeguard (NotFound when missing) and its control and
// procedure best-effort.
func (s *service) SafeguardContext(ctx context.Context, safeguardID string) (*SafeguardContext, error) {
	safeguard, err := s.safeguards.Get(ctx, safeguardID)
	if err != nil {
		return nil, err
	}
	out := &SafeguardContext{Safeguard: *safeguard}
	out.Control, out.Procedure, err = s.controlAncestors(ctx, safeguard.ControlID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TechniqueContext resolves the technique (NotFound when missing) and every ancestor
// best-effort.
func (s *service) TechniqueContext(ctx context.Context, techniqueID string) (*TechniqueContext, error) {
	technique, err := s.techniques.Get(ctx, techniqueID)
	if err != nil {
		return nil, err
	}
	out := &TechniqueContext{Technique: *technique}

	out.Safeguard, err = s.safeguards.Find(ctx, technique.SafeguardID)
	if err != nil {
		return nil, err
	}
	if out.Safeguard == nil {
		return out, nil
	}
	out.Control, out.Procedure, err = s.controlAncestors(ctx, out.Safeguard.ControlID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) controlAncestors(ctx context.Context, controlID string) (*Control, *Procedure, error) {
	control, err := s.controls.Find(ctx, controlID)
	if err != nil || control == nil {
		return nil, nil, err
	}
	procedure, err := s.procedures.Find(ctx, control.ProcedureID)
	if err != nil {
		return nil, nil, err
	}
	return control, procedure, nil
}
