package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
)

func newMakePortCmd() *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
		input     bool
	)
	cmd := &cobra.Command{
		Use:   "make:port <Name>",
		Short: "Generate an input or output port interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:port", err)
			}
			class := naming.Capitalize(args[0])
			stubName, category, kind := "domain/output-port", layout.PortOut, "Output"
			if input {
				stubName, category, kind = "domain/input-port", layout.PortIn, "Input"
			}
			tokens := s.aggregateTokens(aggregate).With("{{PORT_NAME}}", class)
			if err := s.write(stubName, class, s.paths().Resolve(category, naming.Lower(aggregate)), tokens); err != nil {
				return fail("make:port", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s port generated successfully!\n", kind)
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	cmd.Flags().BoolVar(&input, "in", false, "Generate an input port (default is an output port)")
	return cmd
}

func newMakeAdapterCmd() *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
		port      string
		category  string
	)
	cmd := &cobra.Command{
		Use:   "make:adapter <Name>",
		Short: "Generate an infrastructure adapter implementing a port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:adapter", err)
			}
			lower := naming.Lower(aggregate)
			sub := lower
			if c := strings.TrimSpace(category); c != "" {
				sub = naming.Lower(c)
			}
			class := naming.Capitalize(args[0])
			tokens := s.aggregateTokens(aggregate)
			tokens["{{PORT_NAME}}"] = naming.Capitalize(port)
			tokens["{{ADAPTER_NAME}}"] = class
			tokens["{{ADAPTER_CATEGORY}}"] = sub
			pkg := s.paths().ResolveWith(layout.Adapter, layout.Vars{"aggregate": lower, "category": sub})
			if err := s.write("infrastructure/adapter", class, pkg, tokens); err != nil {
				return fail("make:adapter", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nAdapter generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	cmd.Flags().StringVar(&port, "port", "", "Port interface to implement (e.g. NotificationSender)")
	cmd.Flags().StringVar(&category, "category", "", "Infrastructure sub-package (defaults to the aggregate name)")
	_ = cmd.MarkFlagRequired("port")
	return cmd
}
