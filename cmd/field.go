package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abe-nagisa/ziplong/ziplong"
	"github.com/pkg/errors"
)

// parseHex accepts hex with optional 0x prefix and whitespace between bytes.
func parseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return b, nil
}

// malformed reports a field that could not be read as a broken header.
func malformed(err error) error {
	return errors.Wrap(err, "malformed header field")
}

func (a *app) formatValue(l ziplong.Long) string {
	switch a.cfg.Format {
	case formatDec:
		return strconv.FormatInt(l.Value(), 10)
	case formatBoth:
		return fmt.Sprintf("0x%08x (%d)", l.Uint32(), l.Value())
	default:
		return fmt.Sprintf("0x%08x", l.Uint32())
	}
}

func (a *app) printField(w io.Writer, off int, l ziplong.Long) {
	line := fmt.Sprintf("%d\t%s", off, a.formatValue(l))
	if s, ok := ziplong.Lookup(l); ok {
		line += "\t" + s.Name
	}
	fmt.Fprintln(w, line)
}
