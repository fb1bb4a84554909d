package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/config"
	"github.com/deicod/springhex/internal/generator"
	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
	"github.com/deicod/springhex/internal/stub"
)

// generatorOptions are the flags shared by every make:* command.
type generatorOptions struct {
	basePackage string
	output      string
}

func (o *generatorOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.basePackage, "package", "p", "", "Base package (defaults to .hex/config.yml or auto-detection)")
	cmd.Flags().StringVarP(&o.output, "output", "o", ".", "Project root to generate into")
}

// scaffold carries the resolved configuration and output sink for one
// generator run.
type scaffold struct {
	cmd     *cobra.Command
	dir     string
	cfg     config.Resolved
	created []string
}

func newScaffold(cmd *cobra.Command, opts generatorOptions) (*scaffold, error) {
	cfg, err := config.Resolve(opts.output, opts.basePackage)
	for _, w := range cfg.Hex.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	if err != nil {
		return nil, err
	}
	switch cfg.Source {
	case config.SourceConfig:
		fmt.Fprintf(cmd.OutOrStdout(), "Using base package from %s: %s\n", filepath.Join(config.Dir, config.File), cfg.BasePackage)
	case config.SourceDetected:
		fmt.Fprintf(cmd.OutOrStdout(), "Auto-detected base package: %s\n", cfg.BasePackage)
	}
	logVerbose(cmd, "base package %s (source: %s), output %s", cfg.BasePackage, cfg.Source, opts.output)
	return &scaffold{cmd: cmd, dir: opts.output, cfg: cfg}, nil
}

func (s *scaffold) paths() *layout.PathResolver {
	return s.cfg.Paths
}

// aggregateTokens builds the token set shared by every file of an aggregate.
func (s *scaffold) aggregateTokens(aggregate string) stub.Tokens {
	lower := naming.Lower(aggregate)
	tokens := stub.Tokens{
		"{{BASE_PACKAGE}}":          s.cfg.BasePackage,
		"{{AGGREGATE}}":             lower,
		"{{AGGREGATE_CAPITALIZED}}": naming.Capitalize(aggregate),
		"{{AGGREGATE_PLURAL}}":      naming.Pluralize(lower),
	}
	s.paths().PopulatePackagePlaceholders(lower, tokens)
	return tokens
}

// write renders stubName into class within pkg below src/main/java.
func (s *scaffold) write(stubName, class, pkg string, tokens stub.Tokens) error {
	return s.writeTo(layout.OutputPath(s.dir, class, pkg), stubName, pkg, tokens)
}

func (s *scaffold) writeTo(path, stubName, pkg string, tokens stub.Tokens) error {
	content, err := stub.Process(stubName, tokens.With("{{PACKAGE}}", pkg))
	if err != nil {
		return err
	}
	if err := generator.Generate(path, content); err != nil {
		return err
	}
	logVerbose(s.cmd, "rendered %s", stubName)
	fmt.Fprintf(s.cmd.OutOrStdout(), "Created: %s\n", path)
	s.created = append(s.created, path)
	return nil
}

func (s *scaffold) registry() *generator.Registry {
	return generator.NewRegistry(s.dir, s.paths().ResolveStatic(layout.Config))
}

// registerModelBean adds a no-arg @Bean for class when DomainConfig.java
// exists and does not declare bean yet.
func (s *scaffold) registerModelBean(class, bean, pkg string) error {
	added, err := s.registry().AppendIfAbsent("infrastructure/bean-method-model",
		stub.Tokens{"{{CLASS_NAME}}": class, "{{BEAN_NAME}}": bean},
		[]string{pkg + "." + class, "org.springframework.context.annotation.Bean"},
		bean)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(s.cmd.OutOrStdout(), "Updated: DomainConfig.java with @Bean for %s\n", class)
	} else {
		logVerbose(s.cmd, "skipped @Bean %s: DomainConfig.java missing or already declares it", bean)
	}
	return nil
}

// registerHandlerBean creates DomainConfig.java when needed and appends a
// handler @Bean wired to the aggregate repository.
func (s *scaffold) registerHandlerBean(handler, aggregate string, imports []string) error {
	reg := s.registry()
	created, err := reg.EnsureExists()
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(s.cmd.OutOrStdout(), "Created: %s\n", reg.Path())
	}
	tokens := stub.Tokens{
		"{{HANDLER_CLASS}}":         handler,
		"{{HANDLER_BEAN}}":          naming.LowerFirst(handler),
		"{{AGGREGATE_CAPITALIZED}}": naming.Capitalize(aggregate),
	}
	if err := reg.Append("infrastructure/bean-method-handler", tokens, imports); err != nil {
		return err
	}
	fmt.Fprintf(s.cmd.OutOrStdout(), "Updated: DomainConfig.java with @Bean for %s\n", handler)
	return nil
}

// handlerImports lists what a handler bean in DomainConfig.java needs.
func (s *scaffold) handlerImports(category, handler, aggregate string) []string {
	lower := naming.Lower(aggregate)
	return []string{
		s.paths().Resolve(category, lower) + "." + handler,
		s.paths().Resolve(layout.PortOut, lower) + "." + naming.Capitalize(aggregate) + "Repository",
		"org.springframework.context.annotation.Bean",
	}
}
