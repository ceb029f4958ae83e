package cmd

import (
	"fmt"

	"github.com/abe-nagisa/ziplong/ziplong"
	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan HEX",
		Short: "Find known record signatures in a hex blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			b, err := parseHex(args[0])
			if err != nil {
				return err
			}
			matches := ziplong.Scan(b)
			a.log.Debug().Int("bytes", len(b)).Int("matches", len(matches)).Msg("scanned")
			for _, m := range matches {
				fmt.Fprintf(c.OutOrStdout(), "%d\t%s\n", m.Offset, m.Name)
			}
			return nil
		},
	}
}
