package markdown

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

const (
	// AttributeBodyHTML holds the rendered body of the most recently merged file.
	AttributeBodyHTML = "body_html"
	// AttributeChecksum holds the sha256 of the source file.
	AttributeChecksum = "checksum"
	// AttributeSourcePath holds the dataset-relative path of the source file.
	AttributeSourcePath = "source_path"
)

var ErrRecordIDRequired = errors.New("markdown: record id required")

// LoaderConfig configures dataset discovery.
type LoaderConfig struct {
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// DefaultLocale is the locale of bodies whose frontmatter omits one.
	DefaultLocale domain.Locale
	Render        RenderOptions
	Logger        interfaces.Logger
}

// Loader turns a directory of Markdown files into content records. Files are grouped
// by domain: the frontmatter domain wins, otherwise the first directory segment is
// used. Files sharing (domain, id) are merged so each locale can live in its own file.
type Loader struct {
	fs            fs.FS
	pattern       string
	defaultLocale domain.Locale
	renderer      *Renderer
	logger        interfaces.Logger
}

// NewLoader constructs a Loader reading from filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	locale := cfg.DefaultLocale
	if !locale.Valid() {
		locale = domain.DefaultLocale
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Loader{
		fs:            filesystem,
		pattern:       pattern,
		defaultLocale: locale,
		renderer:      NewRenderer(cfg.Render),
		logger:        logger,
	}
}

// LoadFile parses one dataset file.
func (l *Loader) LoadFile(ctx context.Context, name string) (*Document, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, nil, fmt.Errorf("markdown loader read %s: %w", name, err)
	}
	info, err := fs.Stat(l.fs, name)
	if err != nil {
		return nil, nil, fmt.Errorf("markdown loader stat %s: %w", name, err)
	}
	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Document{Path: name, FrontMatter: meta, Body: body, Modified: info.ModTime()}, data, nil
}

// Load walks root and returns the merged records ordered by domain then id.
func (l *Loader) Load(ctx context.Context, root string) ([]*content.Record, error) {
	root = path.Clean(strings.TrimPrefix(root, "/"))
	if root == "" {
		root = "."
	}

	merged := map[string]*content.Record{}
	walkErr := fs.WalkDir(l.fs, root, func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if ok, _ := path.Match(l.pattern, path.Base(name)); !ok {
			return nil
		}

		doc, source, err := l.LoadFile(ctx, name)
		if err != nil {
			return err
		}
		rec, err := l.toRecord(root, doc, source)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		key := rec.Domain + "/" + rec.ID
		if existing, ok := merged[key]; ok {
			mergeRecord(existing, rec)
		} else {
			merged[key] = rec
		}
		logging.WithDatasetContext(l.logger, name, rec.Domain).Debug("dataset.file.loaded", "id", rec.ID)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	records := make([]*content.Record, 0, len(merged))
	for _, rec := range merged {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Domain != records[j].Domain {
			return records[i].Domain < records[j].Domain
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (l *Loader) toRecord(root string, doc *Document, source []byte) (*content.Record, error) {
	meta := doc.FrontMatter
	if meta.ID == "" {
		return nil, ErrRecordIDRequired
	}
	domainKey := meta.Domain
	if domainKey == "" {
		domainKey = domainFromPath(root, doc.Path)
	}
	if domainKey == "" {
		return nil, fmt.Errorf("markdown: record %q has no domain", meta.ID)
	}

	locale := domain.ParseLocale(meta.Locale, l.defaultLocale)
	html, err := l.renderer.Render(doc.Body)
	if err != nil {
		return nil, err
	}

	attributes := meta.Attributes
	if attributes == nil {
		attributes = map[string]any{}
	}
	sum := sha256.Sum256(source)
	attributes[AttributeChecksum] = hex.EncodeToString(sum[:])
	attributes[AttributeSourcePath] = doc.Path
	if meta.ParentDomain != "" {
		attributes[content.ParentDomainAttribute] = meta.ParentDomain
	}
	if html != "" {
		attributes[AttributeBodyHTML] = html
		attributes["body_"+locale.String()] = html
	}

	rec := &content.Record{
		Entity: domain.Entity{
			ID:          meta.ID,
			Slug:        content.NormalizeSlug(meta.Slug),
			Name:        meta.Name(),
			Description: meta.Description(),
		},
		Domain:     domainKey,
		ParentID:   meta.Parent,
		Position:   meta.Position,
		Attributes: attributes,
		CreatedAt:  doc.Modified.UTC(),
		UpdatedAt:  doc.Modified.UTC(),
	}
	if !meta.PublishedAt.IsZero() {
		published := meta.PublishedAt.UTC()
		rec.PublishedAt = &published
	}
	return rec, nil
}

func domainFromPath(root, name string) string {
	rel := strings.TrimPrefix(name, root)
	rel = strings.TrimPrefix(rel, "/")
	if root == "." {
		rel = name
	}
	segments := strings.Split(rel, "/")
	if len(segments) < 2 {
		return ""
	}
	return segments[0]
}

// mergeRecord folds a second file for the same record into dst. Blank fields in dst
// are filled; attributes already present are kept.
func mergeRecord(dst, src *content.Record) {
	if dst.Slug == "" {
		dst.Slug = src.Slug
	}
	if dst.ParentID == "" {
		dst.ParentID = src.ParentID
	}
	if dst.Position == 0 {
		dst.Position = src.Position
	}
	if dst.PublishedAt == nil {
		dst.PublishedAt = src.PublishedAt
	}
	dst.Name = fillText(dst.Name, src.Name)
	dst.Description = fillText(dst.Description, src.Description)
	for key, value := range src.Attributes {
		if _, ok := dst.Attributes[key]; !ok {
			dst.Attributes[key] = value
		}
	}
	if src.UpdatedAt.After(dst.UpdatedAt) {
		dst.UpdatedAt = src.UpdatedAt
	}
}

func fillText(dst, src domain.Text) domain.Text {
	if strings.TrimSpace(dst.Ar) == "" {
		dst.Ar = src.Ar
	}
	if strings.TrimSpace(dst.En) == "" {
		dst.En = src.En
	}
	return dst
}
