package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
)

func newMakeCrudCmd() *cobra.Command {
	var (
		opts  generatorOptions
		table string
	)
	cmd := &cobra.Command{
		Use:   "make:crud <Entity>",
		Short: "Generate a layered CRUD resource",
		Long: "make:crud generates a model, JPA entity, Spring Data repository, service, REST controller and " +
			"request/response DTOs for a plain CRUD resource. Packages follow the `crud` section of .hex/config.yml.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:crud", err)
			}
			entity := naming.Capitalize(args[0])
			lower := naming.Lower(args[0])
			plural := naming.Pluralize(lower)
			if table == "" {
				table = plural
			}
			crud := s.cfg.CrudPaths()
			tokens := s.aggregateTokens(args[0])
			crud.PopulatePackagePlaceholders(lower, tokens)
			tokens["{{ENTITY_NAME}}"] = entity
			tokens["{{ENTITY_PLURAL}}"] = plural
			tokens["{{TABLE_NAME}}"] = table
			tokens["{{REQUEST_NAME}}"] = entity + "Request"
			tokens["{{RESPONSE_NAME}}"] = entity + "Response"

			files := []struct {
				stub, class, layer string
			}{
				{"domain/model", entity, layout.CrudModel},
				{"infrastructure/jpa-entity", entity + "JpaEntity", layout.CrudPersistence},
				{"crud/repository", entity + "Repository", layout.CrudPersistence},
				{"crud/service", entity + "Service", layout.CrudService},
				{"crud/controller", entity + "Controller", layout.CrudController},
				{"domain/request", entity + "Request", layout.CrudDTO},
				{"domain/response", entity + "Response", layout.CrudDTO},
			}
			for _, f := range files {
				if err := s.write(f.stub, f.class, crud.Resolve(f.layer, lower), tokens); err != nil {
					return fail("make:crud", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nCRUD resource generated successfully! (/api/%s)\n", plural)
			return printFileTree(cmd.OutOrStdout(), opts.output, s.created)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&table, "table", "", "Database table name (defaults to the plural of the entity)")
	return cmd
}
