package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/client"
	"github.com/Norgate-AV/winutilz/internal/config"
	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/output"
	"github.com/Norgate-AV/winutilz/internal/version"
)

// annotationElevated marks commands that relaunch themselves as
// administrator when the current process is not elevated.
const annotationElevated = "winutilz/elevated"

// App holds the state shared by every subcommand once the root
// PersistentPreRunE has run.
type App struct {
	Config  *config.Config
	Log     logger.LoggerInterface
	Client  *client.Client
	Printer *output.Printer
}

var (
	app = &App{Log: logger.NewNoOpLogger()}

	// exitFunc is injectable for testing; defaults to os.Exit.
	exitFunc = os.Exit

	// newClient builds the OS wrappers; tests swap in fakes.
	newClient = func(cfg *config.Config, log logger.LoggerInterface) *client.Client {
		return client.New(cfg, log, client.Deps{})
	}
)

// RootCmd is the root command for the winutilz CLI application.
var RootCmd = &cobra.Command{
	Use:               "winutilz",
	Short:             "winutilz - Windows desktop, clipboard, process and power utilities",
	Version:           version.GetVersion(),
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	RootCmd.PersistentFlags().StringP("output", "o", string(output.FormatText), "output format: text, json or yaml")

	RootCmd.AddCommand(
		newCursorCmd(),
		newWallpaperCmd(),
		newClipboardCmd(),
		newCaptureCmd(),
		newImageCmd(),
		newPowerCmd(),
		newProcessCmd(),
		newDesktopCmd(),
		newWindowCmd(),
		newColorsCmd(),
		newDownloadCmd(),
		newResourceCmd(),
		newBrandCmd(),
		newVersionCmd(),
	)
}

// Run executes the root command. The logger is closed on return.
func Run(ctx context.Context) error {
	defer func() { app.Log.Close() }()
	return RootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := NewConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	if err := handleLogsFlag(cfg, cmd.OutOrStdout(), exitFunc); err != nil {
		return err
	}

	log, err := initializeLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	app.Config = cfg
	app.Log = log
	app.Client = newClient(cfg, log)
	app.Printer = output.NewPrinter(cmd.OutOrStdout(), cfg.Output)

	log.Debug("Starting winutilz",
		slog.String("command", cmd.CommandPath()),
		slog.Any("args", args),
		slog.String("version", version.GetVersion()),
	)
	log.Debug("Flags set",
		slog.Bool("verbose", cfg.Verbose),
		slog.String("output", string(cfg.Output)),
	)

	if cmd.Annotations[annotationElevated] == "true" {
		return ensureElevated(log)
	}

	return nil
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *config.Config, w io.Writer, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	opts := logger.LoggerOptions{LogDir: cfg.LogDir}

	if err := logger.PrintLogFile(w, opts); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logger.GetLogPath(opts))
			exitFunc(1)
			return nil
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
		return nil
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// initializeLogger creates a logger writing to the log file and console
func initializeLogger(cfg *config.Config, console io.Writer) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		LogDir:   cfg.LogDir,
		Compress: true,
		Console:  console,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// ensureElevated checks for admin privileges and relaunches if needed
func ensureElevated(log logger.LoggerInterface) error {
	return ensureElevatedWithDeps(log, isElevated, relaunchAsAdmin, exitFunc)
}

// ensureElevatedWithDeps is the testable version with injected dependencies
func ensureElevatedWithDeps(
	log logger.LoggerInterface,
	isElevated func() bool,
	relaunchAsAdmin func() error,
	exitFunc func(int),
) error {
	log.Debug("Checking elevation status")
	if !isElevated() {
		log.Info("This command requires administrator privileges")
		log.Info("Relaunching as administrator")

		if err := relaunchAsAdmin(); err != nil {
			log.Error("RelaunchAsAdmin failed", slog.Any("error", err))
			return fmt.Errorf("error relaunching as admin: %w", err)
		}

		// Exit this instance, the elevated one will continue
		log.Debug("Relaunched successfully, exiting non-elevated instance")
		log.Close()
		exitFunc(0)
		return nil
	}

	log.Debug("Running with administrator privileges")
	return nil
}

func isElevated() bool {
	elevated, err := app.Client.Process.IsElevated()
	if err != nil {
		app.Log.Debug("Could not query elevation", slog.Any("error", err))
		return false
	}

	return elevated
}

func relaunchAsAdmin() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	if strings.Contains(exe, "go-build") {
		return fmt.Errorf("cannot relaunch when run via 'go run', please build the executable first with: go build -o winutilz.exe")
	}

	pid, err := app.Client.Process.RunElevated(exe, joinArgs(os.Args[1:]), "")
	if err != nil {
		return err
	}

	app.Log.Debug("Elevated instance started", slog.Uint64("pid", uint64(pid)))
	return nil
}

// joinArgs builds a Windows command line tail, quoting arguments that
// contain whitespace or quotes.
func joinArgs(args []string) string {
	quoted := make([]string, len(args))

	for i, a := range args {
		if a != "" && !strings.ContainsAny(a, " \t\"") {
			quoted[i] = a
			continue
		}

		quoted[i] = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
	}

	return strings.Join(quoted, " ")
}

// run wraps a RunE with panic recovery and failure logging.
func run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if r := recover(); r != nil {
				app.Log.Error("PANIC RECOVERED",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)

				fmt.Fprintf(cmd.ErrOrStderr(), "\n*** PANIC: %v ***\n", r)
				fmt.Fprintf(cmd.ErrOrStderr(), "Check log file for details\n")
				err = fmt.Errorf("panic: %v", r)
			}
		}()

		if err := fn(cmd, args); err != nil {
			app.Log.Debug("Command failed",
				slog.String("command", cmd.CommandPath()),
				slog.Any("error", err),
			)
			return err
		}

		return nil
	}
}

// emit writes a result through the configured printer.
func emit(v any) error {
	return app.Printer.Print(v)
}
