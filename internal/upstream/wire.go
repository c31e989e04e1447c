package upstream

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
)

// flexibleID accepts string and numeric identifiers.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

type wireText struct {
	Ar *string `json:"ar"`
	En *string `json:"en"`
}

func (w *wireText) text() domain.Text {
	if w == nil {
		return domain.Text{}
	}
	var ar, en string
	if w.Ar != nil {
		ar = *w.Ar
	}
	if w.En != nil {
		en = *w.En
	}
	return domain.NewText(ar, en)
}

type wireRecord struct {
	ID          flexibleID     `json:"id"`
	Slug        *string        `json:"slug"`
	Domain      string         `json:"domain"`
	ParentID    flexibleID     `json:"parentId"`
	Name        *wireText      `json:"name"`
	Description *wireText      `json:"description"`
	Position    int            `json:"position"`
	PublishedAt *time.Time     `json:"publishedAt"`
	Attributes  map[string]any `json:"attributes"`
	CreatedAt   *time.Time     `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt"`
}

type wireList struct {
	Data       []wireRecord      `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

func (w wireRecord) toRecord(domainKey string) *content.Record {
	rec := &content.Record{
		Entity: domain.Entity{
			ID:          string(w.ID),
			Name:        w.Name.text(),
			Description: w.Description.text(),
		},
		Domain:      w.Domain,
		ParentID:    string(w.ParentID),
		Position:    w.Position,
		PublishedAt: w.PublishedAt,
		Attributes:  w.Attributes,
	}
	if w.Slug != nil {
		rec.Slug = content.NormalizeSlug(*w.Slug)
	}
	if rec.Domain == "" {
		rec.Domain = domainKey
	}
	if w.CreatedAt != nil {
		rec.CreatedAt = *w.CreatedAt
	}
	if w.UpdatedAt != nil {
		rec.UpdatedAt = *w.UpdatedAt
	}
	return rec
}
