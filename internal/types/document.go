package types

// Document is an open editor buffer. Path is empty for a document that
// has never been saved. Frontmatter holds the parsed YAML header, if any.
type Document struct {
	Path        string         `json:"path,omitempty"`
	Content     string         `json:"content"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
	IsModified  bool           `json:"is_modified"`
}
