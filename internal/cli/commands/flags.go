package commands

import (
	"flag"
	"io"
	"strconv"
)

// newFlagSet returns a silent FlagSet; parse errors surface as ErrUsage.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrUsage
	}
	return id, nil
}
