package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/window"
)

type windowInfo struct {
	window.Info `yaml:",inline"`
}

func (w windowInfo) Text() string {
	return columns([][2]string{
		{"handle", fmt.Sprintf("%#x", w.Handle)},
		{"class", w.Class},
		{"title", w.Title},
		{"rect", fmt.Sprintf("%d,%d %dx%d", w.Rect.Left, w.Rect.Top, w.Rect.Width(), w.Rect.Height())},
		{"style", fmt.Sprintf("%#08x", w.Style)},
		{"exStyle", fmt.Sprintf("%#08x", w.ExStyle)},
	})
}

// styleChange is one name=on|off argument.
type styleChange struct {
	bit    window.StyleBit
	enable bool
}

func parseStyleChange(s string) (styleChange, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return styleChange{}, fmt.Errorf("invalid style change %q: want name=on or name=off", s)
	}

	bit, err := window.ParseStyleBit(name)
	if err != nil {
		return styleChange{}, err
	}

	enable, err := parseSwitch(value)
	if err != nil {
		return styleChange{}, err
	}

	return styleChange{bit: bit, enable: enable}, nil
}

func newWindowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Inspect, center and restyle windows",
	}
	addTargetFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Print the class, title, rectangle and styles of a window",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string) error {
				hwnd, err := targetWindow(cmd)
				if err != nil {
					return err
				}

				info, err := app.Client.Window.Describe(hwnd)
				if err != nil {
					return err
				}

				return emit(windowInfo{info})
			}),
		},
		&cobra.Command{
			Use:   "center",
			Short: "Center a window on its parent or on the work area",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string) error {
				hwnd, err := targetWindow(cmd)
				if err != nil {
					return err
				}

				return app.Client.Window.Center(hwnd)
			}),
		},
		&cobra.Command{
			Use:   "style <name=on|off>...",
			Short: "Set or clear window style bits",
			Long:  "Style names: " + strings.Join(window.StyleNames(), ", "),
			Args:  cobra.MinimumNArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) error {
				changes := make([]styleChange, 0, len(args))
				for _, a := range args {
					c, err := parseStyleChange(a)
					if err != nil {
						return err
					}

					changes = append(changes, c)
				}

				hwnd, err := targetWindow(cmd)
				if err != nil {
					return err
				}

				for _, c := range changes {
					modify := app.Client.Window.ModifyStyle
					if c.bit.Extended {
						modify = app.Client.Window.ModifyExStyle
					}

					if err := modify(hwnd, c.enable, c.bit.Bits); err != nil {
						return err
					}
				}

				return nil
			}),
		},
	)

	return cmd
}
