package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/shell"
)

// parseSwitch accepts on/off style arguments.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "show", "yes", "enable":
		return true, nil
	case "off", "hide", "no", "disable":
		return false, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid switch %q: want on or off", s)
	}

	return v, nil
}

func newDesktopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "desktop",
		Short: "Control the desktop icon view",
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the desktop icons",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string) error {
			hard, _ := cmd.Flags().GetBool("hard")
			return app.Client.Shell.Refresh(hard)
		}),
	}
	refresh.Flags().Bool("hard", false, "rebuild the view instead of repainting it")

	cmd.AddCommand(
		refresh,
		&cobra.Command{
			Use:   "icons [show|hide]",
			Short: "Print or change whether desktop icons are shown",
			Args:  cobra.MaximumNArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				if len(args) == 0 {
					visible, err := app.Client.Shell.IconsVisible()
					if err != nil {
						return err
					}

					return emit(strconv.FormatBool(visible))
				}

				visible, err := parseSwitch(args[0])
				if err != nil {
					return err
				}

				return app.Client.Shell.SetIconsVisible(visible)
			}),
		},
		&cobra.Command{
			Use:   "grid [on|off]",
			Short: "Print or change whether icons snap to the grid",
			Args:  cobra.MaximumNArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				if len(args) == 0 {
					aligned, err := app.Client.Shell.GridAligned()
					if err != nil {
						return err
					}

					return emit(strconv.FormatBool(aligned))
				}

				enable, err := parseSwitch(args[0])
				if err != nil {
					return err
				}

				return app.Client.Shell.SetGridAligned(enable)
			}),
		},
		&cobra.Command{
			Use:       "arrange <auto-arrange|align-to-grid|show-icons|auto-grid>",
			Short:     "Toggle a desktop view arrangement option",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"auto-arrange", "align-to-grid", "show-icons", "auto-grid"},
			RunE: run(func(_ *cobra.Command, args []string) error {
				a, err := shell.ParseArrangement(args[0])
				if err != nil {
					return err
				}

				return app.Client.Shell.ToggleArrangement(a)
			}),
		},
	)

	return cmd
}
