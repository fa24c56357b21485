package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Norgate-AV/winutilz/internal/capture"
)

// parseHandle reads a window handle in decimal or 0x-prefixed hex.
func parseHandle(s string) (uintptr, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}

	return uintptr(v), nil
}

func addTargetFlags(fs *pflag.FlagSet) {
	fs.String("hwnd", "", "window handle, decimal or 0x hex")
	fs.String("class", "", "find the top-level window by class name")
	fs.String("title", "", "find the top-level window by title")
}

// targetWindow resolves --hwnd, or --class and --title, to a handle.
func targetWindow(cmd *cobra.Command) (uintptr, error) {
	hwnd, _ := cmd.Flags().GetString("hwnd")
	class, _ := cmd.Flags().GetString("class")
	title, _ := cmd.Flags().GetString("title")

	if hwnd != "" {
		return parseHandle(hwnd)
	}

	if class == "" && title == "" {
		return 0, errors.New("one of --hwnd, --class or --title is required")
	}

	return app.Client.Window.Find(class, title)
}

func newCaptureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture the screen or a window to an image file",
	}
	cmd.PersistentFlags().String("strategy", capture.StrategyAuto.String(), "capture method: auto, full, print or bitblt")

	screen := &cobra.Command{
		Use:   "screen <file>",
		Short: "Capture the whole desktop",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			return captureTo(cmd, app.Client.Capture.Desktop(), args[0])
		}),
	}
	addImageFlags(screen)

	win := &cobra.Command{
		Use:   "window <file>",
		Short: "Capture a single window",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			hwnd, err := targetWindow(cmd)
			if err != nil {
				return err
			}

			return captureTo(cmd, hwnd, args[0])
		}),
	}
	addImageFlags(win)
	addTargetFlags(win.Flags())

	cmd.AddCommand(screen, win)

	return cmd
}

func captureTo(cmd *cobra.Command, hwnd uintptr, path string) error {
	name, _ := cmd.Flags().GetString("strategy")

	strategy, err := capture.ParseStrategy(name)
	if err != nil {
		return err
	}

	img, err := app.Client.Capture.Capture(hwnd, strategy)
	if err != nil {
		return err
	}

	format, quality := imageFlags(cmd)
	return saveImage(img, path, format, quality)
}
