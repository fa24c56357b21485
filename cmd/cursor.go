package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/cursor"
)

type cursorEntry struct {
	Icon string `json:"icon" yaml:"icon"`
	Path string `json:"path" yaml:"path"`
}

type cursorList []cursorEntry

func (l cursorList) Text() string {
	rows := make([][2]string, len(l))
	for i, e := range l {
		path := e.Path
		if path == "" {
			path = "(default)"
		}

		rows[i] = [2]string{e.Icon, path}
	}

	return columns(rows)
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func newCursorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Read and replace system cursors",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <icon> <file|url>",
			Short: "Replace a cursor with a .cur or .ani file",
			Args:  cobra.ExactArgs(2),
			RunE: run(func(cmd *cobra.Command, args []string) error {
				icon, err := cursor.ParseIcon(args[0])
				if err != nil {
					return err
				}

				if isURL(args[1]) {
					return app.Client.Cursor.SetFromURL(cmd.Context(), icon, args[1])
				}

				return app.Client.Cursor.Set(icon, args[1])
			}),
		},
		&cobra.Command{
			Use:   "get <icon>",
			Short: "Print the file configured for a cursor",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				icon, err := cursor.ParseIcon(args[0])
				if err != nil {
					return err
				}

				path, err := app.Client.Cursor.Get(icon)
				if err != nil {
					return err
				}

				return emit(path)
			}),
		},
		&cobra.Command{
			Use:   "reset <icon>",
			Short: "Restore the system default for a cursor",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				icon, err := cursor.ParseIcon(args[0])
				if err != nil {
					return err
				}

				return app.Client.Cursor.Reset(icon)
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every cursor and its configured file",
			Args:  cobra.NoArgs,
			RunE: run(func(_ *cobra.Command, _ []string) error {
				var entries cursorList

				for _, icon := range cursor.Icons() {
					path, err := app.Client.Cursor.Get(icon)
					if err != nil {
						return err
					}

					entries = append(entries, cursorEntry{Icon: icon.String(), Path: path})
				}

				return emit(entries)
			}),
		},
	)

	return cmd
}
