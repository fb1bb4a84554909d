package buildtool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInterrupted is returned when the context is cancelled while the build
// tool runs.
var ErrInterrupted = errors.New("build tool execution interrupted")

// ProcessError reports a build tool that exited with a non-zero status.
type ProcessError struct {
	Argv     []string
	ExitCode int
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Argv, " "), e.ExitCode)
}

// Streams are the standard streams handed to the child process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes argv in dir. The child sees the current environment plus
// any variables from dir/.env.
func Run(ctx context.Context, dir string, argv []string, streams Streams) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	env, err := Environ(dir)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr
	err = cmd.Run()
	if ctx.Err() != nil {
		return ErrInterrupted
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ProcessError{Argv: argv, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("start %s: %w", argv[0], err)
	}
	return nil
}

// Environ returns os.Environ plus the variables from dir/.env. Variables
// already set in the process environment win over .env. A missing .env file
// is not an error.
func Environ(dir string) ([]string, error) {
	env := os.Environ()
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return env, nil
		}
		return nil, err
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for k, v := range vars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		env = append(env, k+"="+v)
	}
	return env, nil
}
