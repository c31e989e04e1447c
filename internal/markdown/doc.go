// Package markdown loads portal datasets from Markdown files with YAML frontmatter.
// Frontmatter carries the record fields; the body is rendered to HTML with goldmark
// and stored as a localized body attribute.
package markdown
