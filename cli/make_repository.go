package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/layout"
	"github.com/deicod/springhex/internal/naming"
)

type repositoryFile struct {
	stub   string
	suffix string
}

// storeFiles lists the persistence-side files generated per backing store.
var storeFiles = map[string][]repositoryFile{
	"jpa": {
		{"infrastructure/spring-data-repository", "JpaRepository"},
		{"infrastructure/repository-adapter", "RepositoryAdapter"},
	},
	"mongodb": {
		{"infrastructure/mongo-document", "MongoDocument"},
		{"infrastructure/spring-data-mongo-repository", "MongoRepository"},
		{"infrastructure/mongo-repository-adapter", "RepositoryAdapter"},
	},
	"redis": {
		{"infrastructure/redis-hash-entity", "RedisEntity"},
		{"infrastructure/redis-repository", "RedisRepository"},
		{"infrastructure/redis-repository-adapter", "RepositoryAdapter"},
	},
}

var supportedStores = []string{"jpa", "mongodb", "redis"}

func newMakeRepositoryCmd() *cobra.Command {
	var (
		opts      generatorOptions
		aggregate string
		store     string
	)
	cmd := &cobra.Command{
		Use:   "make:repository <Entity>",
		Short: "Generate a repository port with a store-specific adapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storeKey := naming.Lower(store)
			files, ok := storeFiles[storeKey]
			if !ok {
				return wrapError(fmt.Sprintf("make:repository: unknown store type %q", store), nil,
					choiceHint(store, supportedStores), 1)
			}
			s, err := newScaffold(cmd, opts)
			if err != nil {
				return fail("make:repository", err)
			}
			lower := naming.Lower(aggregate)
			class := naming.Capitalize(aggregate)
			tokens := s.aggregateTokens(aggregate).With("{{ENTITY_NAME}}", naming.Capitalize(args[0]))

			if err := s.write("domain/repository-port", class+"Repository", s.paths().Resolve(layout.PortOut, lower), tokens); err != nil {
				return fail("make:repository", err)
			}
			pkg := s.paths().Resolve(layout.Persistence, lower)
			for _, f := range files {
				if err := s.write(f.stub, class+f.suffix, pkg, tokens); err != nil {
					return fail("make:repository", err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nRepository layer generated successfully! (store: %s)\n", storeKey)
			return nil
		},
	}
	opts.register(cmd)
	requireAggregate(cmd, &aggregate)
	cmd.Flags().StringVarP(&store, "store", "s", "jpa", "Backing store: jpa, mongodb or redis")
	return cmd
}
