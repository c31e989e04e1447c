package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestRecordUUIDIsDeterministicPerDomain(t *testing.T) {
	first := RecordUUID("news", "n1")
	if first == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
	if again := RecordUUID(" NEWS ", " n1 "); again != first {
		t.Fatalf("expected stable uuid, got %s and %s", first, again)
	}
	if other := RecordUUID("lectures", "n1"); other == first {
		t.Fatal("expected domains to map the same id to different uuids")
	}
}

func TestRecordUUIDIsCaseSensitive(t *testing.T) {
	upper := RecordUUID("news", "Abc")
	lower := RecordUUID("news", "abc")
	if upper == lower {
		t.Fatalf("expected distinct uuids for ids differing in case, both %s", upper)
	}
}

func TestRecordUUIDScopesUUIDIdentifiers(t *testing.T) {
	id := uuid.New().String()
	news := RecordUUID("news", id)
	lectures := RecordUUID("lectures", id)
	if news == lectures {
		t.Fatalf("expected uuid ids to be scoped by domain, both %s", news)
	}
	if news == uuid.MustParse(id) {
		t.Fatal("expected uuid ids to be hashed with their domain")
	}
}

func TestRecordUUIDEmpty(t *testing.T) {
	if got := RecordUUID("news", "  "); got != uuid.Nil {
		t.Fatalf("expected nil uuid, got %s", got)
	}
}
