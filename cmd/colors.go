package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/colorref"
	"github.com/Norgate-AV/winutilz/internal/syscolors"
)

type colorEntry struct {
	Element string `json:"element" yaml:"element"`
	Color   string `json:"color" yaml:"color"`
	Default string `json:"default" yaml:"default"`
}

type colorList []colorEntry

func (l colorList) Text() string {
	rows := make([][2]string, len(l))
	for i, e := range l {
		rows[i] = [2]string{e.Element, e.Color}
	}

	return columns(rows)
}

// parseColorEntry reads one element=color argument.
func parseColorEntry(s string) (syscolors.Entry, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return syscolors.Entry{}, fmt.Errorf("invalid color assignment %q: want element=color", s)
	}

	el, err := syscolors.ElementByName(name)
	if err != nil {
		return syscolors.Entry{}, err
	}

	c, err := colorref.ParseAny(value)
	if err != nil {
		return syscolors.Entry{}, err
	}

	return syscolors.Entry{Element: el, Color: c}, nil
}

func newColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Read and change system colors",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <element>",
			Short: "Print the current color of an element",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				el, err := syscolors.ElementByName(args[0])
				if err != nil {
					return err
				}

				c, err := app.Client.Colors.Get(el)
				if err != nil {
					return err
				}

				return emit(c.Hex())
			}),
		},
		&cobra.Command{
			Use:   "set <element=color>...",
			Short: "Apply colors and save them to the registry",
			Long:  "Colors are given as #rrggbb or as the registry form \"R G B\", for example Background=#004080.",
			Args:  cobra.MinimumNArgs(1),
			RunE: run(func(_ *cobra.Command, args []string) error {
				entries := make([]syscolors.Entry, 0, len(args))
				for _, a := range args {
					e, err := parseColorEntry(a)
					if err != nil {
						return err
					}

					entries = append(entries, e)
				}

				return app.Client.Colors.Save(entries...)
			}),
		},
		&cobra.Command{
			Use:   "reset [element]...",
			Short: "Restore colors from the current theme, or every color when none is named",
			RunE: run(func(_ *cobra.Command, args []string) error {
				els := make([]syscolors.Element, 0, len(args))
				for _, a := range args {
					el, err := syscolors.ElementByName(a)
					if err != nil {
						return err
					}

					els = append(els, el)
				}

				return app.Client.Colors.Reset(els...)
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every element with its current and default color",
			Args:  cobra.NoArgs,
			RunE: run(func(_ *cobra.Command, _ []string) error {
				var list colorList

				for _, el := range syscolors.Elements() {
					c, err := app.Client.Colors.Get(el)
					if err != nil {
						return err
					}

					list = append(list, colorEntry{Element: el.Name(), Color: c.Hex(), Default: el.Default().Hex()})
				}

				return emit(list)
			}),
		},
	)

	return cmd
}
