package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/prefabgo/internal/app"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// flags holds the values of the global flags.
type flags struct {
	logLevel   string
	logFormat  string
	format     string
	strict     bool
	namespaces []string
	workers    int
}

// Execute runs the command line with args. Results go to outW, logs and
// messages to errW. A .env file in the working directory provides defaults
// for PREFABGO_LOG_LEVEL and PREFABGO_LOG_FORMAT.
func Execute(args []string, outW, errW io.Writer) error {
	_ = godotenv.Load()

	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	return root.Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	f := &flags{}
	var application *app.App

	root := &cobra.Command{
		Use:   "prefabgo",
		Short: "Compose and instantiate prefab node definitions",
		Long: `prefabgo parses prefab text (components and embedded_components blocks),
validates the resource paths it refers to and resolves named instances by
replacing the {{NAME}} placeholder.

Exit Codes:
  0  - Success
  1  - Failure (invalid prefab, invalid reference, I/O error)
  2  - CLI usage error (invalid arguments or flags)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			slog.Debug("CLI parser started.", "command", cmd.Name())
			cfg := app.Config{
				LogLevel:    f.logLevel,
				LogFormat:   f.logFormat,
				Format:      f.format,
				Namespaces:  f.namespaces,
				WorkerCount: f.workers,
			}
			if cmd.Flags().Changed("strict") {
				strict := f.strict
				cfg.Strict = &strict
			}
			config, err := app.NewConfig(cfg)
			if err != nil {
				return usageError("%s", err)
			}
			application = app.NewApp(outW, errW, config)
			slog.Debug("CLI parser finished successfully.", "config", config)
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%s", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.logLevel, "log-level", envOr("PREFABGO_LOG_LEVEL", "info"), "Logging level: 'debug', 'info', 'warn' or 'error'.")
	pf.StringVar(&f.logFormat, "log-format", envOr("PREFABGO_LOG_FORMAT", "text"), "Log output format: 'text' or 'json'.")
	pf.StringVar(&f.format, "format", "", "Output format: 'yaml', 'json' or 'cbor' (default yaml, or the manifest's output format).")
	pf.BoolVar(&f.strict, "strict", false, "Reject fields the prefab grammar does not declare.")
	pf.StringArrayVar(&f.namespaces, "namespace", nil, "Allowed first resource path segment. Repeatable.")
	pf.IntVar(&f.workers, "workers", runtime.NumCPU(), "Number of prefabs parsed concurrently.")

	appFn := func() *app.App { return application }
	root.AddCommand(
		newParseCommand(appFn),
		newInstantiateCommand(appFn),
		newCheckCommand(appFn),
		newSpawnCommand(appFn),
	)
	return root
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int, name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError("%s requires %s (got %d arguments)\n\nUsage:\n  %s", cmd.Name(), name, len(args), cmd.UseLine())
		}
		return nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseAssignments turns TOKEN=VALUE pairs into a map.
func parseAssignments(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		token, value, ok := strings.Cut(pair, "=")
		if !ok || token == "" {
			return nil, usageError("invalid --set %q: expected TOKEN=VALUE", pair)
		}
		out[token] = value
	}
	return out, nil
}
