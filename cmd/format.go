package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// columns renders key/value rows aligned on the first column.
func columns(rows [][2]string) string {
	var b strings.Builder

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}

	_ = tw.Flush()

	return b.String()
}
