// Package frontmatter splits and composes YAML frontmatter in
// markdown documents.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Split separates a document into its frontmatter and body. Documents
// without a leading frontmatter block, and blocks that fail to parse
// as YAML, yield a nil map and the unmodified content.
func Split(content string) (map[string]any, string) {
	if !strings.HasPrefix(content, delimiter+"\n") {
		return nil, content
	}

	rest := content[len(delimiter)+1:]
	end := strings.Index(rest, "\n"+delimiter+"\n")
	body := ""
	block := ""
	switch {
	case end >= 0:
		block = rest[:end]
		body = rest[end+len(delimiter)+2:]
	case strings.HasSuffix(rest, "\n"+delimiter):
		block = rest[:len(rest)-len(delimiter)-1]
	default:
		return nil, content
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil || fields == nil {
		return nil, content
	}
	return fields, body
}

// Compose renders fields as a frontmatter block ahead of body. An
// empty field map returns body unchanged.
func Compose(fields map[string]any, body string) (string, error) {
	if len(fields) == 0 {
		return body, nil
	}

	encoded, err := yaml.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	return delimiter + "\n" + string(encoded) + delimiter + "\n" + body, nil
}
