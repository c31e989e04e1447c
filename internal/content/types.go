package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-portal/internal/domain"
)

// Record is the storage shape shared by every store. Domain packages decode a Record
// into their typed entity.
type Record struct {
	domain.Entity
	Domain      string         `json:"domain"`
	ParentID    string         `json:"parentId,omitempty"`
	Position    int            `json:"position"`
	PublishedAt *time.Time     `json:"publishedAt,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	copied := *r
	if r.PublishedAt != nil {
		ts := *r.PublishedAt
		copied.PublishedAt = &ts
	}
	copied.Attributes = cloneMap(r.Attributes)
	return &copied
}

// Matches reports whether the record's bilingual name or description contains needle.
// needle must already be lower-cased.
func (r *Record) Matches(needle string) bool {
	if r == nil {
		return false
	}
	if needle == "" {
		return true
	}
	return r.Name.Contains(needle) || r.Description.Contains(needle)
}

// String returns a string attribute or "".
func (r *Record) String(key string) string {
	if r == nil || r.Attributes == nil {
		return ""
	}
	switch v := r.Attributes[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Int returns an integer attribute, accepting the numeric shapes JSON and YAML decoders
// produce.
func (r *Record) Int(key string) int {
	if r == nil || r.Attributes == nil {
		return 0
	}
	switch v := r.Attributes[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Text returns a bilingual attribute. Both {"ar": .., "en": ..} maps and the flat
// key_ar / key_en pair are accepted.
func (r *Record) Text(key string) domain.Text {
	if r == nil || r.Attributes == nil {
		return domain.Text{}
	}
	switch v := r.Attributes[key].(type) {
	case domain.Text:
		return v
	case map[string]any:
		return domain.NewText(stringValue(v["ar"]), stringValue(v["en"]))
	case map[string]string:
		return domain.NewText(v["ar"], v["en"])
	case string:
		return domain.NewText(v, "")
	}
	return domain.NewText(r.String(key+"_ar"), r.String(key+"_en"))
}

// Time returns a timestamp attribute or nil.
func (r *Record) Time(key string) *time.Time {
	if r == nil || r.Attributes == nil {
		return nil
	}
	switch v := r.Attributes[key].(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		ts := v.UTC()
		return &ts
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		ts := v.UTC()
		return &ts
	case string:
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		ts := parsed.UTC()
		return &ts
	default:
		return nil
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		switch v := value.(type) {
		case map[string]any:
			out[key] = cloneMap(v)
		case []any:
			copied := make([]any, len(v))
			copy(copied, v)
			out[key] = copied
		default:
			out[key] = v
		}
	}
	return out
}
