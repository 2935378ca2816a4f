package mcpserver

import (
	"fmt"
	"os"
)

// docInput is a single XML document supplied either by filesystem path
// or as inline content. Exactly one of the two must be set.
type docInput struct {
	Path    string `json:"path,omitempty"    jsonschema:"Filesystem path of the XML document"`
	Content string `json:"content,omitempty" jsonschema:"Inline XML document content"`
}

// resolve returns the document bytes and a display name for logging.
func (d docInput) resolve() ([]byte, string, error) {
	switch {
	case d.Path != "" && d.Content != "":
		return nil, "", fmt.Errorf("provide either path or content, not both")
	case d.Path != "":
		data, err := os.ReadFile(d.Path)
		if err != nil {
			return nil, "", fmt.Errorf("reading document: %w", err)
		}
		return data, d.Path, nil
	case d.Content != "":
		return []byte(d.Content), "inline", nil
	default:
		return nil, "", fmt.Errorf("provide a document via path or content")
	}
}
