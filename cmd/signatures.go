package cmd

import (
	"encoding/hex"
	"fmt"
	"text/tabwriter"

	"github.com/abe-nagisa/ziplong/ziplong"
	"github.com/spf13/cobra"
)

func newSignaturesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "signatures",
		Short: "List well-known ZIP signatures",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVALUE\tBYTES\tNOTE")
			for _, s := range ziplong.Signatures() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, a.formatValue(s.Long), hex.EncodeToString(s.Bytes()), s.Note)
			}
			return w.Flush()
		},
	}
}
