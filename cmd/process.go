package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/process"
)

var requiresAdmin = map[string]string{annotationElevated: "true"}

type privilegeResult struct {
	Privilege string `json:"privilege" yaml:"privilege"`
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Previous  bool   `json:"previous" yaml:"previous"`
}

func (r privilegeResult) Text() string {
	return fmt.Sprintf("%s: %t (was %t)", r.Privilege, r.Enabled, r.Previous)
}

type runResult struct {
	ExitCode uint32 `json:"exitCode" yaml:"exitCode"`
}

func (r runResult) Text() string {
	return strconv.FormatUint(uint64(r.ExitCode), 10)
}

func parsePID(s string) (uint32, error) {
	pid, err := strconv.ParseUint(s, 10, 32)
	if err != nil || pid == 0 {
		return 0, fmt.Errorf("invalid process id %q", s)
	}

	return uint32(pid), nil
}

func pidCommand(use, short string, fn func(pid uint32) error) *cobra.Command {
	return &cobra.Command{
		Use:         use + " <pid>",
		Short:       short,
		Args:        cobra.ExactArgs(1),
		Annotations: requiresAdmin,
		RunE: run(func(_ *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}

			return fn(pid)
		}),
	}
}

func newProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Control processes and privileges",
	}

	privilege := &cobra.Command{
		Use:   "privilege [name]",
		Short: "Enable a privilege for this process, or list privilege names",
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				var names []string
				for _, p := range process.Privileges() {
					names = append(names, p.String())
				}

				return emit(names)
			}

			p, err := process.ParsePrivilege(args[0])
			if err != nil {
				return err
			}

			disable, _ := cmd.Flags().GetBool("disable")

			previous, err := app.Client.Process.SetPrivilege(p, !disable)
			if err != nil {
				return err
			}

			return emit(privilegeResult{Privilege: p.String(), Enabled: !disable, Previous: previous})
		}),
	}
	privilege.Flags().Bool("disable", false, "disable the privilege instead")

	runCmd := &cobra.Command{
		Use:   "run <command line>",
		Short: "Run a command line, wait for it and print its exit code",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			silent, _ := cmd.Flags().GetBool("silent")
			dir, _ := cmd.Flags().GetString("dir")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			code, err := app.Client.Process.RunCommand(ctx, strings.Join(args, " "), process.RunOptions{
				Silent: silent,
				Dir:    dir,
			})
			if err != nil {
				return err
			}

			return emit(runResult{ExitCode: code})
		}),
	}
	runCmd.Flags().Bool("silent", false, "hide the console window of the child")
	runCmd.Flags().String("dir", "", "working directory of the child")
	runCmd.Flags().Duration("timeout", 0, "terminate the child after this long (0 waits forever)")

	inject := &cobra.Command{
		Use:         "inject <pid> <code-file>",
		Short:       "Run position-independent code in another process",
		Args:        cobra.ExactArgs(2),
		Annotations: requiresAdmin,
		RunE: run(func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}

			code, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("could not read code: %w", err)
			}

			var param []byte
			if path, _ := cmd.Flags().GetString("param"); path != "" {
				if param, err = os.ReadFile(path); err != nil {
					return fmt.Errorf("could not read parameter: %w", err)
				}
			}

			return app.Client.Process.InjectPID(pid, code, param)
		}),
	}
	inject.Flags().String("param", "", "file copied into the target and passed to the code")

	cmd.AddCommand(
		pidCommand("suspend", "Suspend every thread of a process", func(pid uint32) error {
			return app.Client.Process.SuspendPID(pid)
		}),
		pidCommand("resume", "Resume a suspended process", func(pid uint32) error {
			return app.Client.Process.ResumePID(pid)
		}),
		pidCommand("kill", "Terminate a process", func(pid uint32) error {
			return app.Client.Process.KillPID(pid)
		}),
		privilege,
		runCmd,
		inject,
		&cobra.Command{
			Use:   "elevated",
			Short: "Report whether this process runs as administrator",
			Args:  cobra.NoArgs,
			RunE: run(func(_ *cobra.Command, _ []string) error {
				ok, err := app.Client.Process.IsElevated()
				if err != nil {
					return err
				}

				return emit(strconv.FormatBool(ok))
			}),
		},
	)

	return cmd
}
