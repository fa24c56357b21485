package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/imagedata"
)

// saveImage writes img to path in the format given by flag, or by the
// path's extension when the flag is empty.
func saveImage(img *imagedata.ImageData, path, formatFlag string, quality int) error {
	var (
		format imagedata.Format
		err    error
	)

	if formatFlag != "" {
		format, err = imagedata.ParseFormat(formatFlag)
	} else {
		format, err = imagedata.FormatFromPath(path)
	}

	if err != nil {
		return err
	}

	if err := img.SaveFile(path, format, &imagedata.EncodeOptions{JPEGQuality: quality}); err != nil {
		return err
	}

	app.Log.Debug("Image saved",
		slog.String("path", path),
		slog.String("format", format.String()),
		slog.Int("width", img.Width),
		slog.Int("height", img.Height),
	)

	return nil
}

func addImageFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "image format: bmp, png or jpeg (default from the file extension)")
	cmd.Flags().IntP("quality", "q", imagedata.DefaultJPEGQuality, "JPEG quality, 1-100")
}

func imageFlags(cmd *cobra.Command) (format string, quality int) {
	format, _ = cmd.Flags().GetString("format")
	quality, _ = cmd.Flags().GetInt("quality")
	return format, quality
}

func newClipboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard",
		Short: "Read and write the clipboard",
	}

	getImage := &cobra.Command{
		Use:   "get-image <file>",
		Short: "Save the clipboard bitmap to a file",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			img, err := app.Client.Clipboard.Image()
			if err != nil {
				return err
			}

			format, quality := imageFlags(cmd)
			return saveImage(img, args[0], format, quality)
		}),
	}
	addImageFlags(getImage)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the clipboard text",
			Args:  cobra.NoArgs,
			RunE: run(func(_ *cobra.Command, _ []string) error {
				text, err := app.Client.Clipboard.Text()
				if err != nil {
					return err
				}

				return emit(text)
			}),
		},
		&cobra.Command{
			Use:   "set [text]",
			Short: "Copy text to the clipboard, reading stdin when no text is given",
			Args:  cobra.MaximumNArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) error {
				if len(args) == 1 {
					return app.Client.Clipboard.SetText(args[0])
				}

				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("could not read stdin: %w", err)
				}

				return app.Client.Clipboard.SetText(strings.TrimRight(string(data), "\r\n"))
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the clipboard",
			Args:  cobra.NoArgs,
			RunE: run(func(_ *cobra.Command, _ []string) error {
				return app.Client.Clipboard.Clear()
			}),
		},
		getImage,
		&cobra.Command{
			Use:   "set-image <file>",
			Short: "Copy a BMP, PNG or JPEG file to the clipboard as a bitmap",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				img, err := imagedata.LoadFile(args[0])
				if err != nil {
					return err
				}

				return app.Client.Clipboard.SetImage(img)
			}),
		},
	)

	return cmd
}
