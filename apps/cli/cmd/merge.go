package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
	"github.com/abdul-hamid-achik/rolespec/packages/core/config"
	"github.com/abdul-hamid-achik/rolespec/packages/output"
	"github.com/abdul-hamid-achik/rolespec/packages/template"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file|directory>...",
	Short: "Fold configuration layers into the effective configuration",
	Long: `Fold one or more scenario configuration layers into a single
effective configuration and print it.

Layers merge left to right on top of the built-in defaults. Later layers
win on conflicting keys unless --strict is set, in which case any
conflicting leaf aborts the fold with the dotted path of the collision.

Examples:
  rolespec merge rolespec.yaml
  rolespec merge . overrides.yaml --strict
  rolespec merge . --get driver.name
  rolespec merge . --out effective.yaml
  rolespec merge . --check golden.yaml
  rolespec merge . --watch`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: mergeCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	mergeStrictFlag     bool
	mergeOutputFlag     string
	mergeGetFlag        string
	mergeOutFlag        string
	mergeNoDefaultsFlag bool
	mergeDebugFlag      bool
	mergeCheckFlag      string
	mergeWatchFlag      bool
)

func init() {
	mergeCmd.Flags().BoolVar(&mergeStrictFlag, "strict", false, "Abort on conflicting leaf values instead of overwriting (env: ROLESPEC_STRICT)")
	mergeCmd.Flags().StringVarP(&mergeOutputFlag, "output", "o", "", "Output format: yaml or json (default yaml, env: ROLESPEC_OUTPUT)")
	mergeCmd.Flags().StringVar(&mergeGetFlag, "get", "", "Print a single path from the effective configuration (e.g. driver.name)")
	mergeCmd.Flags().StringVar(&mergeOutFlag, "out", "", "Write the effective configuration to a file instead of stdout")
	mergeCmd.Flags().BoolVar(&mergeNoDefaultsFlag, "no-defaults", false, "Fold without the built-in default layer")
	mergeCmd.Flags().BoolVar(&mergeDebugFlag, "debug", false, "Show each layer before folding")
	mergeCmd.Flags().StringVar(&mergeCheckFlag, "check", "", "Compare the effective configuration against a golden file and exit 1 on drift")
	mergeCmd.Flags().BoolVarP(&mergeWatchFlag, "watch", "w", false, "Watch layer files for changes and re-fold")

	mergeCmd.MarkFlagsMutuallyExclusive("check", "watch")
	mergeCmd.MarkFlagsMutuallyExclusive("check", "get")
}

func mergeCommand(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(&config.Settings{
		Strict: mergeStrictFlag,
		Output: mergeOutputFlag,
	})
	if err != nil {
		return err
	}
	console := newConsole(cmd, settings)

	paths, err := resolveLayerArgs(args)
	if err != nil {
		return err
	}

	policy := conftree.Overwrite
	if settings.Strict {
		policy = conftree.Raise
	}

	fold := func() (*config.Effective, error) {
		stack := config.NewStack()
		if !mergeNoDefaultsFlag {
			stack = config.NewStack(config.WithBase(config.DefaultTree()))
		}
		for _, path := range paths {
			if err := stack.PushFile(path); err != nil {
				return nil, err
			}
		}

		if mergeDebugFlag {
			for _, layer := range stack.Layers() {
				data, err := yaml.Marshal(layer.Tree)
				if err != nil {
					return nil, err
				}
				console.Debug("layer "+layer.Name, string(data))
			}
		}

		return stack.Effective(policy)
	}

	emit := func(eff *config.Effective) error {
		var rendered []byte
		var err error

		switch {
		case mergeGetFlag != "":
			result, err := eff.Query(mergeGetFlag)
			if err != nil {
				return err
			}
			rendered = []byte(result.String() + "\n")
		case settings.Output == "json":
			rendered, err = eff.JSON()
			if err != nil {
				return err
			}
			rendered = append(rendered, '\n')
		default:
			rendered, err = eff.YAML()
			if err != nil {
				return err
			}
		}

		if mergeOutFlag != "" {
			return template.WriteFile(mergeOutFlag, string(rendered))
		}
		console.Print(string(rendered))
		return nil
	}

	eff, err := fold()
	if err != nil {
		return err
	}

	if mergeCheckFlag != "" {
		return checkGolden(console, eff, mergeCheckFlag, settings.Quiet)
	}

	if err := emit(eff); err != nil {
		return err
	}

	if !mergeWatchFlag {
		return nil
	}

	return watchAndRefold(cmd, console, paths, fold, emit)
}

// resolveLayerArgs expands each argument into a concrete layer file path.
// Directories resolve to the scenario file they contain.
func resolveLayerArgs(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := config.ResolveLayerPath(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// checkGolden compares the effective configuration against a golden file
// and exits with ExitDrift when they differ.
func checkGolden(console *output.Console, eff *config.Effective, goldenPath string, quiet bool) error {
	golden, err := config.LoadFile(goldenPath)
	if err != nil {
		return err
	}

	if !eff.Matches(golden) {
		console.Eprintf("Drift detected: effective configuration does not match %s\n", goldenPath)
		os.Exit(ExitDrift)
	}

	if !quiet {
		console.Printf("Check passed: effective configuration matches %s\n", goldenPath)
	}
	return nil
}

// watchAndRefold re-runs the fold whenever a watched layer file changes.
func watchAndRefold(cmd *cobra.Command, console *output.Console, paths []string, fold func() (*config.Effective, error), emit func(*config.Effective) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	watchedDirs := make(map[string]bool)
	for _, path := range paths {
		watched[filepath.Clean(path)] = true
		dir := filepath.Dir(path)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watchedDirs[dir] = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	// Debounce timer for rapid file changes
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// fsnotify builds event names from the directory passed to
			// Add, so a watch on "." reports "./x.yaml" for the layer
			// "x.yaml". Compare cleaned paths on both sides.
			changed := filepath.Clean(event.Name)
			if event.Has(fsnotify.Write) && watched[changed] {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\nLayer changed: %s\nRe-folding...\n\n", changed)

					eff, err := fold()
					if err != nil {
						console.Error(err)
					} else if err := emit(eff); err != nil {
						console.Error(err)
					}

					fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			console.Error(fmt.Errorf("watcher error: %w", err))
		}
	}
}
