package generator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/stub"
)

// ErrMalformedRegistry is returned when DomainConfig.java has no closing
// brace to insert before.
var ErrMalformedRegistry = errors.New("DomainConfig.java appears malformed: no closing brace found")

const (
	registryClass = "DomainConfig"
	registryStub  = "infrastructure/domain-config"
)

// Registry patches DomainConfig.java, the Spring configuration class that
// wires domain handlers and models as beans.
type Registry struct {
	dir string
	pkg string
}

// NewRegistry targets DomainConfig.java in pkg below the output dir.
func NewRegistry(dir, pkg string) *Registry {
	return &Registry{dir: dir, pkg: pkg}
}

// Path is the location of DomainConfig.java.
func (r *Registry) Path() string {
	return layout.OutputPath(r.dir, registryClass, r.pkg)
}

// Exists reports whether DomainConfig.java has been created.
func (r *Registry) Exists() bool {
	return Exists(r.Path())
}

// EnsureExists creates DomainConfig.java from its stub when missing and
// reports whether it did.
func (r *Registry) EnsureExists() (bool, error) {
	if r.Exists() {
		return false, nil
	}
	content, err := stub.Process(registryStub, stub.Tokens{
		"{{BASE_PACKAGE}}": r.pkg,
		"{{PACKAGE}}":      r.pkg,
	})
	if err != nil {
		return false, err
	}
	if err := Generate(r.Path(), content); err != nil {
		return false, err
	}
	return true, nil
}

// Append renders stubName and inserts it before the last closing brace,
// adding any missing imports first. Repeated calls duplicate the snippet.
func (r *Registry) Append(stubName string, tokens stub.Tokens, imports []string) error {
	content, err := os.ReadFile(r.Path())
	if err != nil {
		return err
	}
	rendered, err := stub.Process(stubName, tokens)
	if err != nil {
		return err
	}
	updated, err := insertBean(string(content), rendered, imports)
	if err != nil {
		return fmt.Errorf("%w: %s", err, r.Path())
	}
	return os.WriteFile(r.Path(), []byte(updated), 0o644)
}

// AppendIfAbsent behaves like Append but skips, returning false, when the
// file does not exist or already declares method. It never creates the file.
func (r *Registry) AppendIfAbsent(stubName string, tokens stub.Tokens, imports []string, method string) (bool, error) {
	content, err := os.ReadFile(r.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if strings.Contains(string(content), " "+method+"(") {
		return false, nil
	}
	rendered, err := stub.Process(stubName, tokens)
	if err != nil {
		return false, err
	}
	updated, err := insertBean(string(content), rendered, imports)
	if err != nil {
		return false, fmt.Errorf("%w: %s", err, r.Path())
	}
	if err := os.WriteFile(r.Path(), []byte(updated), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func insertBean(content, snippet string, imports []string) (string, error) {
	if !strings.Contains(content, "}") {
		return "", ErrMalformedRegistry
	}
	for _, imp := range imports {
		line := "import " + imp + ";"
		if !strings.Contains(content, line) {
			content = insertImport(content, line)
		}
	}
	brace := strings.LastIndex(content, "}")
	return content[:brace] + strings.TrimRight(snippet, "\n") + "\n" + content[brace:], nil
}

// insertImport places line after the last import statement, else after the
// package declaration, else at the top of the file.
func insertImport(content, line string) string {
	if idx := strings.LastIndex(content, "import "); idx >= 0 {
		if end := strings.Index(content[idx:], ";"); end >= 0 {
			at := idx + end + 1
			return content[:at] + "\n" + line + content[at:]
		}
	}
	if idx := strings.Index(content, "package "); idx >= 0 {
		if end := strings.Index(content[idx:], ";"); end >= 0 {
			at := idx + end + 1
			return content[:at] + "\n\n" + line + content[at:]
		}
	}
	return line + "\n" + content
}
