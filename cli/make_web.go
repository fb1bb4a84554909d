package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
)

func newMakeControllerCmd() *cobra.Command {
	var opts generatorOptions
	cmd := &cobra.Command{
		Use:   "make:controller <aggregate>",
		Short: "Generate a REST controller for an aggregate",
		Long:  "make:controller accepts either the aggregate (order) or the class name (OrderController).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:controller", err)
			}
			aggregate := naming.WithoutSuffix(args[0], "Controller")
			pkg := s.paths().Resolve(layout.Controller, naming.Lower(aggregate))
			if err := s.write("infrastructure/controller", aggregate+"Controller", pkg, s.aggregateTokens(aggregate)); err != nil {
				return fail("make:controller", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nController generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func newMakeMapperCmd() *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
	)
	cmd := &cobra.Command{
		Use:   "make:mapper <Entity>",
		Short: "Generate a mapper between a domain model and its JPA entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:mapper", err)
			}
			entity := naming.WithoutSuffix(args[0], "Mapper")
			pkg := s.paths().Resolve(layout.Persistence, naming.Lower(aggregate))
			tokens := s.aggregateTokens(aggregate).With("{{ENTITY_NAME}}", entity)
			if err := s.write("infrastructure/mapper", entity+"Mapper", pkg, tokens); err != nil {
				return fail("make:mapper", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nMapper generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	return cmd
}

func newMakeRequestCmd() *cobra.Command {
	return newDTOCmd("make:request", "Request", "{{REQUEST_NAME}}", "domain/request")
}

func newMakeResponseCmd() *cobra.Command {
	return newDTOCmd("make:response", "Response", "{{RESPONSE_NAME}}", "domain/response")
}

// newDTOCmd builds the request/response generators, which differ only in
// suffix, token and stub.
func newDTOCmd(use, suffix, token, stubName string) *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
	)
	cmd := &cobra.Command{
		Use:   use + " <Name>",
		Short: fmt.Sprintf("Generate a %s DTO", naming.Lower(suffix)),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail(use, err)
			}
			class := naming.WithSuffix(args[0], suffix)
			pkg := s.paths().Resolve(layout.DTO, naming.Lower(aggregate))
			if err := s.write(stubName, class, pkg, s.aggregateTokens(aggregate).With(token, class)); err != nil {
				return fail(use, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s DTO generated successfully!\n", suffix)
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	return cmd
}
