package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
)

type moduleFile struct {
	stub     string
	class    string
	category string
	extra    map[string]string
}

// moduleFiles lists the bounded-context files for aggregate class C.
func moduleFiles(c string) []moduleFile {
	createCommand := "Create" + c + "Command"
	getQuery := "Get" + c + "Query"
	return []moduleFile{
		{"domain/aggregate", c, layout.Model, nil},
		{"domain/value-object-id", c + "Id", layout.Model, map[string]string{"{{VALUE_OBJECT_NAME}}": c + "Id"}},
		{"domain/command", createCommand, layout.Command, map[string]string{"{{COMMAND_NAME}}": createCommand}},
		{"domain/command-handler", createCommand + "Handler", layout.Command, map[string]string{"{{COMMAND_NAME}}": createCommand}},
		{"domain/query", getQuery, layout.Query, map[string]string{"{{QUERY_NAME}}": getQuery, "{{RETURN_TYPE}}": "Object"}},
		{"domain/query-handler", getQuery + "Handler", layout.Query, map[string]string{"{{QUERY_NAME}}": getQuery, "{{RETURN_TYPE}}": "Object"}},
		{"domain/repository-port", c + "Repository", layout.PortOut, nil},
		{"domain/input-port", c + "UseCase", layout.PortIn, map[string]string{"{{PORT_NAME}}": c + "UseCase"}},
		{"domain/request", "Create" + c + "Request", layout.DTO, map[string]string{"{{REQUEST_NAME}}": "Create" + c + "Request"}},
		{"domain/response", c + "Response", layout.DTO, map[string]string{"{{RESPONSE_NAME}}": c + "Response"}},
		{"infrastructure/jpa-entity", c + "JpaEntity", layout.Persistence, nil},
		{"infrastructure/spring-data-repository", c + "JpaRepository", layout.Persistence, nil},
		{"infrastructure/repository-adapter", c + "RepositoryAdapter", layout.Persistence, nil},
		{"infrastructure/mapper", c + "Mapper", layout.Persistence, nil},
		{"infrastructure/controller", c + "Controller", layout.Controller, nil},
	}
}

func newMakeModuleCmd() *cobra.Command {
	var opts generatorOptions
	cmd := &cobra.Command{
		Use:   "make:module <Name>",
		Short: "Generate a full bounded-context module",
		Long: "make:module generates the aggregate, its id, a create command and get query with handlers, " +
			"ports, DTOs, the JPA persistence adapter and a controller, then registers the handlers in DomainConfig.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:module", err)
			}
			class := naming.Capitalize(args[0])
			lower := naming.Lower(args[0])
			tokens := s.aggregateTokens(args[0])
			tokens["{{ENTITY_NAME}}"] = class
			tokens["{{TABLE_NAME}}"] = naming.Pluralize(lower)

			for _, f := range moduleFiles(class) {
				fileTokens := tokens.Clone()
				for k, v := range f.extra {
					fileTokens[k] = v
				}
				if err := s.write(f.stub, f.class, s.paths().Resolve(f.category, lower), fileTokens); err != nil {
					return fail("make:module", err)
				}
			}
			generated := len(s.created)

			createHandler := "Create" + class + "CommandHandler"
			if err := s.registerHandlerBean(createHandler, args[0], s.handlerImports(layout.Command, createHandler, args[0])); err != nil {
				return fail("make:module", err)
			}
			getHandler := "Get" + class + "QueryHandler"
			getImports := []string{s.paths().Resolve(layout.Query, lower) + "." + getHandler}
			if err := s.registerHandlerBean(getHandler, args[0], getImports); err != nil {
				return fail("make:module", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nModule generated successfully!")
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files + DomainConfig update for %s\n", generated, class)
			return printFileTree(cmd.OutOrStdout(), opts.output, s.created)
		},
	}
	opts.register(cmd)
	return cmd
}
