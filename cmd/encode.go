package cmd

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abe-nagisa/ziplong/ziplong"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode VALUE|SIGNATURE",
		Short: "Encode a magnitude or named signature as 4 little-endian bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			l, err := parseLong(args[0])
			if err != nil {
				return err
			}
			if v := l.Value(); v < 0 || v > math.MaxUint32 {
				a.log.Warn().Int64("value", v).Msg("value exceeds 32 bits, encoding low 32 bits")
			}
			fmt.Fprintln(c.OutOrStdout(), hex.EncodeToString(l.Bytes()))
			return nil
		},
	}
}

func parseLong(s string) (ziplong.Long, error) {
	if sig, ok := ziplong.LookupName(strings.ToUpper(s)); ok {
		return sig.Long, nil
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return ziplong.Long{}, errors.Wrapf(err, "invalid value %q", s)
	}
	return ziplong.New(v), nil
}
