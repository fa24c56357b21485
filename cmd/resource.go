package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/resource"
)

func newResourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Extract embedded resources",
	}

	extract := &cobra.Command{
		Use:   "extract <name> <type> <file>",
		Short: "Write a resource to a file",
		Long: "Names and types are strings or #-prefixed integer ids; types also accept\n" +
			"well-known names such as RCDATA, ICON or ANICURSOR.",
		Args: cobra.ExactArgs(3),
		RunE: run(func(cmd *cobra.Command, args []string) (err error) {
			name, err := resource.ParseID(args[0])
			if err != nil {
				return err
			}

			typ, err := resource.ParseType(args[1])
			if err != nil {
				return err
			}

			module, _ := cmd.Flags().GetString("module")
			dir, _ := cmd.Flags().GetString("dir")

			var loader resource.Loader

			switch {
			case module != "" && dir != "":
				return errors.New("--module and --dir are mutually exclusive")
			case dir != "":
				loader = resource.NewFS(os.DirFS(dir))
			case module != "":
				var m *resource.Module

				m, err = resource.OpenModule(module)
				if err != nil {
					return err
				}

				defer func() {
					err = errors.Join(err, m.Close())
				}()

				loader = m
			default:
				loader = resource.Self()
			}

			app.Log.Debug("Extracting resource",
				slog.String("name", name.String()),
				slog.String("type", typ.String()),
				slog.String("path", args[2]),
			)

			return resource.Extract(loader, name, typ, args[2])
		}),
	}
	extract.Flags().String("module", "", "load from this executable or DLL instead of winutilz itself")
	extract.Flags().String("dir", "", "load from files laid out as <dir>/<type>/<name>")

	cmd.AddCommand(extract)

	return cmd
}
