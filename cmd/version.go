package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/version"
)

type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func (v versionInfo) Text() string {
	return version.GetFullVersion()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, commit and build date",
		Args:  cobra.NoArgs,
		RunE: run(func(_ *cobra.Command, _ []string) error {
			return emit(versionInfo{
				Version: version.GetVersion(),
				Commit:  version.GetCommit(),
				Date:    version.GetDate(),
			})
		}),
	}
}
