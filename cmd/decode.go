package cmd

import (
	"github.com/abe-nagisa/ziplong/ziplong"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		offset int
		all    bool
	)
	c := &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode 4-byte little-endian fields from hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			b, err := parseHex(args[0])
			if err != nil {
				return err
			}
			if !all {
				l, err := ziplong.FromBytes(b, offset)
				if err != nil {
					return malformed(err)
				}
				a.log.Debug().Int("offset", offset).Int64("value", l.Value()).Msg("decoded field")
				a.printField(c.OutOrStdout(), offset, l)
				return nil
			}

			buf := ziplong.Buf(b)
			if err := buf.Skip(offset); err != nil {
				return malformed(err)
			}
			for pos := offset; buf.Len() >= ziplong.Size; pos += ziplong.Size {
				l, err := buf.Long()
				if err != nil {
					return malformed(err)
				}
				a.printField(c.OutOrStdout(), pos, l)
			}
			if buf.Len() > 0 {
				a.log.Warn().Int("bytes", buf.Len()).Msg("trailing bytes ignored")
			}
			return nil
		},
	}
	c.Flags().IntVarP(&offset, "offset", "o", 0, "byte offset of the first field")
	c.Flags().BoolVarP(&all, "all", "a", false, "decode every consecutive field")
	return c
}
