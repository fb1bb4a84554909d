package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
)

func newMakeAggregateCmd() *cobra.Command {
	var opts generatorOptions
	cmd := &cobra.Command{
		Use:   "make:aggregate <Name>",
		Short: "Generate an aggregate root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:aggregate", err)
			}
			class := naming.Capitalize(args[0])
			lower := naming.Lower(args[0])
			pkg := s.paths().Resolve(layout.Model, lower)
			if err := s.write("domain/aggregate", class, pkg, s.aggregateTokens(args[0])); err != nil {
				return fail("make:aggregate", err)
			}
			if err := s.registerModelBean(class, lower, pkg); err != nil {
				return fail("make:aggregate", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nAggregate generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func newMakeModelCmd() *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
	)
	cmd := &cobra.Command{
		Use:   "make:model <Name>",
		Short: "Generate a domain model inside an aggregate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:model", err)
			}
			class := naming.Capitalize(args[0])
			pkg := s.paths().Resolve(layout.Model, naming.Lower(aggregate))
			tokens := s.aggregateTokens(aggregate).With("{{ENTITY_NAME}}", class)
			if err := s.write("domain/model", class, pkg, tokens); err != nil {
				return fail("make:model", err)
			}
			if err := s.registerModelBean(class, naming.LowerFirst(class), pkg); err != nil {
				return fail("make:model", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nDomain model generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	return cmd
}

func newMakeEntityCmd() *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
		table     string
	)
	cmd := &cobra.Command{
		Use:   "make:entity <Name>",
		Short: "Generate a domain entity and its JPA entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:entity", err)
			}
			entity := naming.Capitalize(args[0])
			lower := naming.Lower(aggregate)
			if table == "" {
				table = naming.Pluralize(lower)
			}
			tokens := s.aggregateTokens(aggregate)
			tokens["{{ENTITY_NAME}}"] = entity
			tokens["{{TABLE_NAME}}"] = table

			if err := s.write("domain/entity", entity, s.paths().Resolve(layout.Model, lower), tokens); err != nil {
				return fail("make:entity", err)
			}
			if err := s.write("infrastructure/jpa-entity", entity+"JpaEntity", s.paths().Resolve(layout.Persistence, lower), tokens); err != nil {
				return fail("make:entity", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nEntities generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	cmd.Flags().StringVar(&table, "table", "", "Database table name (defaults to the plural of the aggregate)")
	return cmd
}

func newMakeValueObjectCmd() *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
	)
	cmd := &cobra.Command{
		Use:   "make:value-object <Name>",
		Short: "Generate an immutable value object",
		Long:  "make:value-object generates a Java record. Names ending in \"Id\" get an identifier wrapper around a UUID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:value-object", err)
			}
			class := naming.Capitalize(args[0])
			stubName := "domain/value-object"
			if strings.HasSuffix(class, "Id") {
				stubName = "domain/value-object-id"
			}
			tokens := s.aggregateTokens(aggregate).With("{{VALUE_OBJECT_NAME}}", class)
			if err := s.write(stubName, class, s.paths().Resolve(layout.Model, naming.Lower(aggregate)), tokens); err != nil {
				return fail("make:value-object", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nValue object generated successfully!")
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	return cmd
}

func requireAggregate(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "aggregate", "a", "", "Aggregate name (e.g. order)")
	_ = cmd.MarkFlagRequired("aggregate")
}
