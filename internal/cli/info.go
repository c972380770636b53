package cli

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/vss-go/pkg/vss"
	"github.com/hsiuhsiu/vss-go/pkg/vss/groups"
)

func (a *app) groupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List supported groups",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tORDER BITS\tSCALAR BYTES")
			for _, g := range groups.All() {
				marker := ""
				if g.Name() == groups.Default {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s%s\t%d\t%d\n", g.Name(), marker, g.Order().BitLen(), g.ScalarLength())
			}
			return w.Flush()
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "vss-go version %s\n", vss.LibraryVersion())
			fmt.Fprintf(a.out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(a.out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
