// Package layout maps hexagonal-architecture categories (model, command,
// port-out, ...) onto Java packages and source file paths.
package layout

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/deicod/springhex/internal/stub"
)

const (
	// SourceDir is the Maven/Gradle main source root.
	SourceDir = "src/main/java"
	// TestSourceDir is the Maven/Gradle test source root.
	TestSourceDir = "src/test/java"
)

// Category names accepted by Resolve and friends.
const (
	Model         = "model"
	Event         = "event"
	Command       = "command"
	Query         = "query"
	PortIn        = "port-in"
	PortOut       = "port-out"
	DTO           = "dto"
	Controller    = "controller"
	Persistence   = "persistence"
	EventListener = "event-listener"
	Adapter       = "adapter"

	Config     = "config"
	Mediator   = "mediator"
	CQRS       = "cqrs"
	DomainRoot = "domain-root"
)

// DefaultPaths is the package layout used when .hex/config.yml does not
// override a category. Templates are relative to the base package.
var DefaultPaths = map[string]string{
	Model:         "{aggregate}.model",
	Event:         "{aggregate}.model.event",
	Command:       "{aggregate}.application.command",
	Query:         "{aggregate}.application.query",
	PortIn:        "{aggregate}.application.port.input",
	PortOut:       "{aggregate}.application.port.output",
	DTO:           "{aggregate}.infrastructure.web.dto",
	Controller:    "{aggregate}.infrastructure.web",
	Persistence:   "{aggregate}.infrastructure.persistence",
	EventListener: "{aggregate}.infrastructure.event",
	Adapter:       "{aggregate}.infrastructure.{category}",

	Config:     "infrastructure.config",
	Mediator:   "infrastructure.mediator",
	CQRS:       "shared.cqrs",
	DomainRoot: "shared.domain",
}

// Vars carries the values substituted into {name} template variables.
type Vars map[string]string

// PathResolver resolves category names to fully qualified packages.
type PathResolver struct {
	basePackage string
	placeholder string
	defaults    map[string]string
	overrides   map[string]string
}

// NewPathResolver builds the aggregate-scoped resolver. overrides come from
// the `paths` section of .hex/config.yml and may use "." or "/".
func NewPathResolver(basePackage string, overrides map[string]string) *PathResolver {
	return &PathResolver{
		basePackage: basePackage,
		placeholder: "aggregate",
		defaults:    DefaultPaths,
		overrides:   overrides,
	}
}

// Resolve returns the package for category within aggregate.
func (r *PathResolver) Resolve(category, aggregate string) string {
	return r.ResolveWith(category, Vars{r.placeholder: aggregate})
}

// ResolveWith resolves category using arbitrary template variables, e.g.
// {"aggregate": "order", "category": "messaging"} for adapters.
func (r *PathResolver) ResolveWith(category string, vars Vars) string {
	template := r.template(category)
	for name, value := range vars {
		template = strings.ReplaceAll(template, "{"+name+"}", value)
	}
	return r.qualify(template)
}

// ResolveStatic resolves categories that do not depend on an aggregate,
// such as config or mediator.
func (r *PathResolver) ResolveStatic(category string) string {
	return r.qualify(r.template(category))
}

// Categories lists every category known to the resolver, sorted.
func (r *PathResolver) Categories() []string {
	seen := make(map[string]struct{}, len(r.defaults)+len(r.overrides))
	for k := range r.defaults {
		seen[k] = struct{}{}
	}
	for k := range r.overrides {
		seen[k] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// PopulatePackagePlaceholders adds {{PACKAGE_<CATEGORY>}} for every category,
// resolved for aggregate. Adapter packages keep their sub-category equal to
// "adapter" since no concrete category is known here.
func (r *PathResolver) PopulatePackagePlaceholders(aggregate string, tokens stub.Tokens) {
	for _, category := range r.Categories() {
		pkg := r.ResolveWith(category, Vars{r.placeholder: aggregate, "category": Adapter})
		tokens[PlaceholderFor(category)] = pkg
	}
}

// PlaceholderFor returns the package token for category, e.g.
// "port-out" -> "{{PACKAGE_PORT_OUT}}".
func PlaceholderFor(category string) string {
	name := strings.ToUpper(strings.ReplaceAll(category, "-", "_"))
	return "{{PACKAGE_" + name + "}}"
}

func (r *PathResolver) template(category string) string {
	if v, ok := r.overrides[category]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	if v, ok := r.defaults[category]; ok {
		return v
	}
	return "{" + r.placeholder + "}." + category
}

func (r *PathResolver) qualify(template string) string {
	rel := strings.Trim(PathToPackage(strings.TrimSpace(template)), ".")
	switch {
	case rel == "":
		return r.basePackage
	case r.basePackage == "":
		return rel
	default:
		return r.basePackage + "." + rel
	}
}

// PackageToPath converts "com.acme.order" into "com/acme/order".
func PackageToPath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// PathToPackage converts "com/acme/order" (either separator) into a package.
func PathToPackage(p string) string {
	return strings.NewReplacer("/", ".", "\\", ".").Replace(p)
}

// OutputPath is the main-source location of class in pkg under dir.
func OutputPath(dir, class, pkg string) string {
	return filepath.Join(dir, filepath.FromSlash(SourceDir), filepath.FromSlash(PackageToPath(pkg)), class+".java")
}

// TestOutputPath is the test-source location of class in pkg under dir.
func TestOutputPath(dir, class, pkg string) string {
	return filepath.Join(dir, filepath.FromSlash(TestSourceDir), filepath.FromSlash(PackageToPath(pkg)), class+".java")
}
