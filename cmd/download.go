package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type downloadResult struct {
	URL   string `json:"url" yaml:"url"`
	Path  string `json:"path" yaml:"path"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
}

func (r downloadResult) Text() string {
	return fmt.Sprintf("Saved %s to %s", humanize.Bytes(uint64(r.Bytes)), r.Path)
}

// fileNameFromURL returns the last path segment of rawURL.
func fileNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		return "", errors.New("cannot derive a file name from the URL, pass one explicitly")
	}

	return name, nil
}

func newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download <url> [file]",
		Short: "Download a file over HTTP",
		Args:  cobra.RangeArgs(1, 2),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			dst := ""
			if len(args) == 2 {
				dst = args[1]
			} else {
				name, err := fileNameFromURL(args[0])
				if err != nil {
					return err
				}

				dst = name
			}

			n, err := app.Client.Downloader.DownloadFile(cmd.Context(), args[0], dst)
			if err != nil {
				return err
			}

			app.Log.Debug("Downloaded", slog.String("url", args[0]), slog.Int64("bytes", n))

			return emit(downloadResult{URL: args[0], Path: dst, Bytes: n})
		}),
	}
}
