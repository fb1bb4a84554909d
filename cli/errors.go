package cli

import (
	"errors"
	"fmt"

	"github.com/deicod/springhex/internal/buildtool"
	"github.com/deicod/springhex/internal/config"
	"github.com/deicod/springhex/internal/detect"
	"github.com/deicod/springhex/internal/generator"
	"github.com/deicod/springhex/internal/stub"
)

// CommandError provides structured error reporting for CLI commands.
type CommandError struct {
	Message    string
	Cause      error
	Suggestion string
	ExitCode   int
}

// Error implements the error interface.
func (e CommandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "command failed"
}

// Unwrap exposes the wrapped error.
func (e CommandError) Unwrap() error {
	return e.Cause
}

// ExitStatus returns the process exit code associated with the error.
func (e CommandError) ExitStatus() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	return 1
}

func wrapError(message string, cause error, suggestion string, exitCode int) error {
	msg := message
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return CommandError{Message: msg, Cause: cause, Suggestion: suggestion, ExitCode: exitCode}
}

// fail turns a domain error into a CommandError, picking the hint from the
// sentinel it wraps.
func fail(command string, err error) error {
	var cerr CommandError
	if errors.As(err, &cerr) {
		return err
	}
	return wrapError(fmt.Sprintf("%s: %v", command, err), err, hintFor(err), 1)
}

func hintFor(err error) string {
	var perr *buildtool.ProcessError
	switch {
	case errors.Is(err, config.ErrNoBasePackage):
		return "Specify the base package with -p or run 'spring-hex init'."
	case errors.Is(err, generator.ErrFileExists):
		return "Remove the existing file or choose a different name."
	case errors.Is(err, generator.ErrMalformedRegistry):
		return "Restore the closing brace of DomainConfig.java and retry."
	case errors.Is(err, generator.ErrMalformedChangelog):
		return "Restore </databaseChangeLog> in the master changelog and retry."
	case errors.Is(err, stub.ErrNotFound):
		return "The binary is missing an embedded template; reinstall spring-hex."
	case errors.Is(err, detect.ErrToolNotDetected):
		return "Run from a Maven or Gradle project with Flyway or Liquibase configured."
	case errors.Is(err, buildtool.ErrInterrupted):
		return ""
	case errors.As(err, &perr):
		return "Review the build tool output above for details."
	}
	return ""
}

func formatSuggestion(hint string) string {
	if hint == "" {
		return ""
	}
	return fmt.Sprintf("hint: %s", hint)
}
