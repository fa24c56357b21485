package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/branding"
)

func newBrandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brand [format]",
		Short: "Expand Windows branding tokens such as %WINDOWS_LONG%",
		Long:  "Tokens: " + strings.Join(branding.Tokens(), ", "),
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(_ *cobra.Command, args []string) error {
			format := branding.WindowsLong
			if len(args) == 1 {
				format = args[0]
			}

			s, err := app.Client.Branding.Format(format)
			if err != nil {
				return err
			}

			return emit(s)
		}),
	}
}
