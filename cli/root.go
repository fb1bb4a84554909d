// Package cli wires the spring-hex commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var verbose bool

// Version is stamped at build time with -ldflags.
var Version = "dev"

// NewRootCmd constructs the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spring-hex",
		Short: "spring-hex - hexagonal architecture scaffolding for Spring Boot",
		Long: "spring-hex generates Spring Boot sources laid out for hexagonal architecture with CQRS " +
			"(aggregates, commands, queries, ports, adapters, controllers) and drives Flyway or Liquibase " +
			"migrations through Maven or Gradle.",
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging output")
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMakeAggregateCmd())
	cmd.AddCommand(newMakeModelCmd())
	cmd.AddCommand(newMakeEntityCmd())
	cmd.AddCommand(newMakeValueObjectCmd())
	cmd.AddCommand(newMakeCommandCmd())
	cmd.AddCommand(newMakeQueryCmd())
	cmd.AddCommand(newMakeEventCmd())
	cmd.AddCommand(newMakePortCmd())
	cmd.AddCommand(newMakeAdapterCmd())
	cmd.AddCommand(newMakeControllerCmd())
	cmd.AddCommand(newMakeMapperCmd())
	cmd.AddCommand(newMakeRequestCmd())
	cmd.AddCommand(newMakeResponseCmd())
	cmd.AddCommand(newMakeRepositoryCmd())
	cmd.AddCommand(newMakeMediatorCmd())
	cmd.AddCommand(newMakeModuleCmd())
	cmd.AddCommand(newMakeCrudCmd())
	cmd.AddCommand(newMakeTestCmd())
	cmd.AddCommand(newMakeMigrationCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newMigrateFreshCmd())
	cmd.AddCommand(newMigrateRepairCmd())
	cmd.AddCommand(newMigrateRollbackCmd())
	cmd.AddCommand(newRunTestCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.SuggestionsMinimumDistance = 2
	return cmd
}

// Execute runs the CLI entrypoint. Ctrl-C cancels the command context so
// running build tools are stopped.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(report(err))
	}
}

func report(err error) int {
	exitCode := 1
	var cerr CommandError
	if errors.As(err, &cerr) {
		msg := strings.TrimSpace(cerr.Message)
		if msg == "" && cerr.Cause != nil {
			msg = cerr.Cause.Error()
		}
		if msg != "" {
			fmt.Fprintln(os.Stderr, "Error: "+msg)
		}
		if cerr.Cause != nil && msg != cerr.Cause.Error() && verbose {
			fmt.Fprintf(os.Stderr, "details: %v\n", cerr.Cause)
		}
		if cerr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, formatSuggestion(cerr.Suggestion))
		}
		exitCode = cerr.ExitStatus()
	} else {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
	}
	return exitCode
}

func logVerbose(cmd *cobra.Command, format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "[verbose] "+format+"\n", args...)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
