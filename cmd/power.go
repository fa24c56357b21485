package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/power"
)

func actionNames() []string {
	var names []string
	for _, a := range power.Actions() {
		names = append(names, a.String())
	}

	return names
}

func newPowerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "power <action>",
		Short:     "Turn the screen off, lock, sleep, shut down, reboot or log off",
		ValidArgs: actionNames(),
		Args:      cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			action, err := power.ParseAction(args[0])
			if err != nil {
				return err
			}

			if action != power.ActionBlueScreen {
				return app.Client.Power.Do(action)
			}

			s, _ := cmd.Flags().GetString("status")

			status, err := strconv.ParseUint(s, 0, 32)
			if err != nil {
				return fmt.Errorf("invalid status %q: %w", s, err)
			}

			return app.Client.Power.RaiseBlueScreen(uint32(status))
		}),
	}
	cmd.Flags().String("status", fmt.Sprintf("%#x", power.DefaultBugCheckStatus), "NTSTATUS raised by the bsod action")

	return cmd
}
