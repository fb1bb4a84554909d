// Package stub loads the embedded Java, SQL and YAML templates and performs
// flat {{TOKEN}} substitution on them.
package stub

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed stubs
var stubFS embed.FS

const (
	stubRoot      = "stubs"
	stubExtension = ".stub"
)

// ErrNotFound reports a template name with no embedded stub.
var ErrNotFound = errors.New("stub template not found")

// Tokens maps a placeholder such as "{{BASE_PACKAGE}}" to its literal
// replacement.
type Tokens map[string]string

// Clone returns a copy that can be extended without touching t.
func (t Tokens) Clone() Tokens {
	out := make(Tokens, len(t)+4)
	for k, v := range t {
		out[k] = v
	}
	return out
}

// With returns a copy of t with key set to value.
func (t Tokens) With(key, value string) Tokens {
	out := t.Clone()
	out[key] = value
	return out
}

// Load returns the raw template registered under name, e.g. "domain/aggregate".
func Load(name string) (string, error) {
	raw, err := stubFS.ReadFile(path.Join(stubRoot, name+stubExtension))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s%s", ErrNotFound, name, stubExtension)
		}
		return "", fmt.Errorf("read stub %s: %w", name, err)
	}
	return string(raw), nil
}

// Apply replaces every occurrence of every token key. Keys are visited in
// sorted order; callers keep keys disjoint so the order never shows in the
// output.
func Apply(template string, tokens Tokens) string {
	keys := make([]string, 0, len(tokens))
	for k := range tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := template
	for _, k := range keys {
		out = strings.ReplaceAll(out, k, tokens[k])
	}
	return out
}

// Process loads name and applies tokens to it.
func Process(name string, tokens Tokens) (string, error) {
	template, err := Load(name)
	if err != nil {
		return "", err
	}
	return Apply(template, tokens), nil
}

// Names lists every embedded stub without the extension, sorted.
func Names() ([]string, error) {
	var names []string
	err := fs.WalkDir(stubFS, stubRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, stubExtension) {
			return nil
		}
		rel := strings.TrimPrefix(p, stubRoot+"/")
		names = append(names, strings.TrimSuffix(rel, stubExtension))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
