package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/colorref"
	"github.com/Norgate-AV/winutilz/internal/wallpaper"
)

func styleNames() string {
	var names []string
	for _, s := range wallpaper.Styles() {
		names = append(names, s.String())
	}

	return strings.Join(names, ", ")
}

func newWallpaperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallpaper",
		Short: "Read and change the desktop wallpaper",
	}

	set := &cobra.Command{
		Use:   "set <file|url>",
		Short: "Apply an image as the wallpaper",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("style")

			style, err := wallpaper.ParseStyle(name)
			if err != nil {
				return err
			}

			if isURL(args[0]) {
				return app.Client.Wallpaper.SetFromURL(cmd.Context(), args[0], style)
			}

			return app.Client.Wallpaper.Set(args[0], style)
		}),
	}
	set.Flags().StringP("style", "s", wallpaper.CropToFit.String(), "wallpaper style: "+styleNames())

	cmd.AddCommand(
		set,
		&cobra.Command{
			Use:   "get",
			Short: "Print the current wallpaper file",
			Args:  cobra.NoArgs,
			RunE: run(func(_ *cobra.Command, _ []string) error {
				path, err := app.Client.Wallpaper.Get()
				if err != nil {
					return err
				}

				return emit(path)
			}),
		},
		&cobra.Command{
			Use:   "style [style]",
			Short: "Print the wallpaper style, or reapply the wallpaper with a new one",
			Args:  cobra.MaximumNArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				if len(args) == 0 {
					style, err := app.Client.Wallpaper.Style()
					if err != nil {
						return err
					}

					return emit(style.String())
				}

				style, err := wallpaper.ParseStyle(args[0])
				if err != nil {
					return err
				}

				return app.Client.Wallpaper.SetStyle(style)
			}),
		},
		&cobra.Command{
			Use:   "color [color]",
			Short: "Print or set the desktop background color",
			Long:  "Colors are given as #rrggbb or as the registry form \"R G B\".",
			Args:  cobra.MaximumNArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				if len(args) == 0 {
					c, err := app.Client.Wallpaper.BackgroundColor()
					if err != nil {
						return err
					}

					return emit(c.Hex())
				}

				c, err := colorref.ParseAny(args[0])
				if err != nil {
					return err
				}

				return app.Client.Wallpaper.SetBackgroundColor(c)
			}),
		},
	)

	return cmd
}
