package dom

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSaveDir is where Save writes when no directory is given.
const DefaultSaveDir = "static"

// Extension is the file extension Save uses for n.
func (n *Node) Extension() string {
	return n.kind.extension()
}

// Save renders n into dir/name and returns the path. The node's extension is
// appended to name when missing and dir is created as needed. An existing
// file with the same content is left untouched.
func (n *Node) Save(name, dir string) (string, error) {
	if name == "" {
		return "", errors.New("dom: save: empty file name")
	}
	if dir == "" {
		dir = DefaultSaveDir
	}
	ext := n.Extension()
	if !strings.HasSuffix(name, ext) {
		name += ext
	}
	path := filepath.Join(dir, name)

	s, err := n.Markup()
	if err != nil {
		return "", err
	}
	out := []byte(s)
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, out) {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("dom: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("dom: save %s: %w", path, err)
	}
	return path, nil
}
