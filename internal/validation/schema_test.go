package validation

import (
	"errors"
	"testing"
)

func TestValidatorAcceptsRecordAndList(t *testing.T) {
	v, err := Default()
	if err != nil {
		t.Fatalf("compile schemas: %v", err)
	}

	record := []byte(`{"id": 7, "slug": "firewall", "name": {"ar": "جدار", "en": "Firewall"}, "position": 1}`)
	if err := v.ValidateJSON(RecordSchema, record); err != nil {
		t.Fatalf("expected record to validate, got %v", err)
	}

	list := []byte(`{"data": [{"id": "n1"}], "pagination": {"itemsCount": 1, "pagesCount": 1, "pageSize": 10, "currentPage": 1}}`)
	if err := v.ValidateJSON(ListSchema, list); err != nil {
		t.Fatalf("expected list to validate, got %v", err)
	}
}

func TestValidatorReportsIssues(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("compile schemas: %v", err)
	}

	err = v.ValidateJSON(ListSchema, []byte(`{"data": [{"name": "plain"}], "pagination": {"itemsCount": -1}}`))
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected schema validation error, got %v", err)
	}
	if issues := Issues(err); len(issues) == 0 {
		t.Fatalf("expected issues to be reported")
	}
}

func TestValidatorRejectsMalformedJSON(t *testing.T) {
	v, _ := Default()
	err := v.ValidateJSON(RecordSchema, []byte(`{"id":`))
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected malformed payload to fail validation, got %v", err)
	}
}

func TestValidatorUnknownSchema(t *testing.T) {
	v, _ := Default()
	if err := v.ValidateJSON("other.json", []byte(`{}`)); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected unknown schema error, got %v", err)
	}
}
