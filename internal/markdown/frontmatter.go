package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-portal/internal/domain"
)

// FrontMatter is the metadata block at the top of a dataset file.
type FrontMatter struct {
	Domain        string         `yaml:"domain"`
	ID            string         `yaml:"id"`
	Slug          string         `yaml:"slug"`
	Parent        string         `yaml:"parent"`
	ParentDomain  string         `yaml:"parent_domain"`
	Position      int            `yaml:"position"`
	PublishedAt   time.Time      `yaml:"published_at"`
	Locale        string         `yaml:"locale"`
	NameAr        string         `yaml:"name_ar"`
	NameEn        string         `yaml:"name_en"`
	DescriptionAr string         `yaml:"description_ar"`
	DescriptionEn string         `yaml:"description_en"`
	Attributes    map[string]any `yaml:"attributes"`
}

// Name returns the bilingual name.
func (f FrontMatter) Name() domain.Text {
	return domain.NewText(f.NameAr, f.NameEn)
}

// Description returns the bilingual description.
func (f FrontMatter) Description() domain.Text {
	return domain.NewText(f.DescriptionAr, f.DescriptionEn)
}

// Document is a parsed dataset file.
type Document struct {
	Path        string
	FrontMatter FrontMatter
	Body        []byte
	Modified    time.Time
}

// ParseFrontMatter extracts metadata and the Markdown body from source.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	meta.Domain = strings.TrimSpace(meta.Domain)
	meta.ID = strings.TrimSpace(meta.ID)
	meta.Parent = strings.TrimSpace(meta.Parent)
	meta.Attributes = normalizeMap(meta.Attributes)
	return meta, bytes.TrimSpace(body), nil
}

// normalizeMap converts YAML's map[any]any nodes into map[string]any so attributes
// serialize as JSON.
func normalizeMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeMap(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = normalizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = normalizeValue(inner)
		}
		return out
	default:
		return v
	}
}
