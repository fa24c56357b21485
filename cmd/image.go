package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/imagedata"
)

func newImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Convert images between BMP, PNG and JPEG",
	}

	convert := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode an image",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			img, err := imagedata.LoadFile(args[0])
			if err != nil {
				return err
			}

			format, quality := imageFlags(cmd)
			return saveImage(img, args[1], format, quality)
		}),
	}
	addImageFlags(convert)

	dither := &cobra.Command{
		Use:   "dither <in> <out>",
		Short: "Reduce an image to black and white with ordered dithering",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			img, err := imagedata.LoadFile(args[0])
			if err != nil {
				return err
			}

			img.Dither()

			format, quality := imageFlags(cmd)
			return saveImage(img, args[1], format, quality)
		}),
	}
	addImageFlags(dither)

	cmd.AddCommand(convert, dither)

	return cmd
}
