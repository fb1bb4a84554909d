package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
)

func newMakeCommandCmd() *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
		noHandler bool
	)
	cmd := &cobra.Command{
		Use:   "make:command <Name>",
		Short: "Generate a CQRS command and its handler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:command", err)
			}
			class := naming.WithSuffix(args[0], "Command")
			pkg := s.paths().Resolve(layout.Command, naming.Lower(aggregate))
			tokens := s.aggregateTokens(aggregate).With("{{COMMAND_NAME}}", class)
			if err := s.write("domain/command", class, pkg, tokens); err != nil {
				return fail("make:command", err)
			}
			if !noHandler {
				handler := class + "Handler"
				if err := s.write("domain/command-handler", handler, pkg, tokens); err != nil {
					return fail("make:command", err)
				}
				if err := s.registerHandlerBean(handler, aggregate, s.handlerImports(layout.Command, handler, aggregate)); err != nil {
					return fail("make:command", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nCommand generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	cmd.Flags().BoolVar(&noHandler, "no-handler", false, "Skip generating the command handler")
	return cmd
}

func newMakeQueryCmd() *cobra.Command {
	var (
		opts       generatorOptions
		aggregate  string
		noHandler  bool
		returnType string
	)
	cmd := &cobra.Command{
		Use:   "make:query <Name>",
		Short: "Generate a CQRS query and its handler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:query", err)
			}
			class := naming.WithSuffix(args[0], "Query")
			pkg := s.paths().Resolve(layout.Query, naming.Lower(aggregate))
			tokens := s.aggregateTokens(aggregate)
			tokens["{{QUERY_NAME}}"] = class
			tokens["{{RETURN_TYPE}}"] = returnType
			if err := s.write("domain/query", class, pkg, tokens); err != nil {
				return fail("make:query", err)
			}
			if !noHandler {
				handler := class + "Handler"
				if err := s.write("domain/query-handler", handler, pkg, tokens); err != nil {
					return fail("make:query", err)
				}
				if err := s.registerHandlerBean(handler, aggregate, s.handlerImports(layout.Query, handler, aggregate)); err != nil {
					return fail("make:query", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nQuery generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	cmd.Flags().BoolVar(&noHandler, "no-handler", false, "Skip generating the query handler")
	cmd.Flags().StringVarP(&returnType, "return-type", "r", "Object", "Return type of the query handler")
	return cmd
}

func newMakeEventCmd() *cobra.Command {
	var (
		opts       generatorOptions
		aggregate  string
		noListener bool
	)
	cmd := &cobra.Command{
		Use:   "make:event <Name>",
		Short: "Generate a domain event and its listener",
		Long:  "make:event generates a domain event record; the \"Event\" suffix is appended when missing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:event", err)
			}
			lower := naming.Lower(aggregate)
			class := naming.WithSuffix(args[0], "Event")
			tokens := s.aggregateTokens(aggregate).With("{{EVENT_NAME}}", class)
			if err := s.write("domain/domain-event", class, s.paths().Resolve(layout.Event, lower), tokens); err != nil {
				return fail("make:event", err)
			}
			if !noListener {
				pkg := s.paths().Resolve(layout.EventListener, lower)
				if err := s.write("infrastructure/event-listener", class+"Listener", pkg, tokens); err != nil {
					return fail("make:event", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nEvent generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	cmd.Flags().BoolVar(&noListener, "no-listener", false, "Skip generating the event listener")
	return cmd
}
