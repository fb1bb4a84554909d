package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/stub"
)

type staticFile struct {
	stub     string
	class    string
	category string
}

var mediatorFiles = []staticFile{
	{"mediator/CommandBus", "CommandBus", layout.Mediator},
	{"mediator/SimpleCommandBus", "SimpleCommandBus", layout.Mediator},
	{"mediator/QueryBus", "QueryBus", layout.Mediator},
	{"mediator/SimpleQueryBus", "SimpleQueryBus", layout.Mediator},
	{"mediator/MediatorConfig", "MediatorConfig", layout.Config},
	{"domain/command-handler-interface", "CommandHandler", layout.CQRS},
	{"domain/query-handler-interface", "QueryHandler", layout.CQRS},
	{"domain/aggregate-root", "AggregateRoot", layout.DomainRoot},
}

func newMakeMediatorCmd() *cobra.Command {
	var opts generatorOptions
	cmd := &cobra.Command{
		Use:   "make:mediator",
		Short: "Generate the command/query bus infrastructure",
		Long: "make:mediator generates the CommandBus and QueryBus with simple implementations, " +
			"the handler interfaces, the AggregateRoot base class, MediatorConfig and DomainConfig.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:mediator", err)
			}
			tokens := stub.Tokens{"{{BASE_PACKAGE}}": s.cfg.BasePackage}
			for _, category := range []string{layout.Mediator, layout.CQRS, layout.Config, layout.DomainRoot} {
				tokens[layout.PlaceholderFor(category)] = s.paths().ResolveStatic(category)
			}
			for _, f := range mediatorFiles {
				if err := s.write(f.stub, f.class, s.paths().ResolveStatic(f.category), tokens); err != nil {
					return fail("make:mediator", err)
				}
			}
			reg := s.registry()
			created, err := reg.EnsureExists()
			if err != nil {
				return fail("make:mediator", err)
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", reg.Path())
				s.created = append(s.created, reg.Path())
			} else {
				logVerbose(cmd, "kept existing %s", reg.Path())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nMediator infrastructure generated successfully!")
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files in %s\n", len(s.created), s.cfg.BasePackage)
			return printFileTree(cmd.OutOrStdout(), opts.output, s.created)
		},
	}
	opts.register(cmd)
	return cmd
}
