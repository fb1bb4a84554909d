package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/deicod/springhex/internal/buildtool"
	"github.com/deicod/springhex/internal/detect"
)

const watchDebounce = 300 * time.Millisecond

func newRunTestCmd() *cobra.Command {
	var (
		output  string
		unit    bool
		feature bool
		watch   bool
	)
	cmd := &cobra.Command{
		Use:   "run:test",
		Short: "Run the project tests through Maven or Gradle",
		Long: "run:test invokes the build tool test task. --unit and --feature restrict the run to the " +
			"<base>.unit and <base>.feature packages created by make:test.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if unit && feature {
				return wrapError("run:test: --unit and --feature are mutually exclusive", nil,
					"Pass at most one of --unit or --feature.", 1)
			}
			build, err := detect.DetectBuildTool(output)
			if err != nil {
				return wrapError("run:test: no build tool detected", err,
					"Run from a Maven or Gradle project directory, or pass -o.", 1)
			}
			scope := buildtool.AllTests
			switch {
			case unit:
				scope = buildtool.UnitTests
			case feature:
				scope = buildtool.FeatureTests
			}
			argv := buildtool.TestCommand(detect.Executable(output, build), build, scope)
			fmt.Fprintf(cmd.OutOrStdout(), "Detected: %s\n", strings.ToUpper(string(build)))
			if watch {
				return runTestWatch(cmd, output, argv)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Running: %s\n", strings.Join(argv, " "))
			return runArgv(commandContext(cmd), cmd, "run:test", output, argv)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", ".", "Project root")
	cmd.Flags().BoolVar(&unit, "unit", false, "Run only tests in the unit package")
	cmd.Flags().BoolVar(&feature, "feature", false, "Run only tests in the feature package")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-run tests when Java sources change")
	return cmd
}

func runTestWatch(cmd *cobra.Command, dir string, argv []string) error {
	ctx := commandContext(cmd)
	run := func() {
		fmt.Fprintf(cmd.OutOrStdout(), "Running: %s\n", strings.Join(argv, " "))
		if err := runArgv(ctx, cmd, "run:test", dir, argv); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "run:test: %v\n", err)
		}
	}
	run()
	if ctx.Err() != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return wrapError(fmt.Sprintf("run:test: watch failed: %v", err), err, "Install inotify/fsevents support and retry.", 1)
	}
	defer watcher.Close()

	srcDir := filepath.Join(dir, "src")
	dirs, err := sourceDirs(srcDir)
	if err != nil {
		return wrapError(fmt.Sprintf("run:test: unable to watch %s: %v", srcDir, err), err,
			"Ensure the src directory exists before using --watch.", 1)
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			return wrapError(fmt.Sprintf("run:test: unable to watch %s: %v", d, err), err, "", 1)
		}
	}
	logVerbose(cmd, "watching %d directories under %s", len(dirs), srcDir)
	fmt.Fprintln(cmd.OutOrStdout(), "Watching for changes. Press Ctrl+C to stop.")

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				_ = watcher.Add(event.Name)
			}
			if !isJavaEvent(event) {
				continue
			}
			pending = true
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "run:test: watch error: %v\n", err)
			}
		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			fmt.Fprintln(cmd.OutOrStdout(), "\nChange detected, re-running tests...")
			run()
		}
	}
}

// sourceDirs lists root and every directory below it.
func sourceDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

func isJavaEvent(event fsnotify.Event) bool {
	if event.Name == "" || (event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write)) {
		return false
	}
	return strings.HasSuffix(event.Name, ".java")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
