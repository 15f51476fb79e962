// Package message loads the message template and renders it per recipient.
package message

import (
	"fmt"
	"os"
	"strings"
)

// Template is the message text plus the optional placeholder token that
// recipient names substitute for. The body is immutable once loaded.
type Template struct {
	body        string
	placeholder string
}

// Load reads the message file verbatim. An empty placeholder disables name
// substitution entirely.
func Load(path, placeholder string) (*Template, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message from %s: %w", path, err)
	}
	return &Template{body: string(body), placeholder: placeholder}, nil
}

// Render returns the message text for one recipient. When both a
// placeholder and a name are present, every literal occurrence of the
// placeholder is replaced with the name; otherwise the body is returned
// unchanged.
func (t *Template) Render(name string) string {
	if t.placeholder == "" || name == "" {
		return t.body
	}
	return strings.ReplaceAll(t.body, t.placeholder, name)
}
