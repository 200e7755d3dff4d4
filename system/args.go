package system

import (
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Cyclone1070/sysutil/internal/tool/mkdir"
	"github.com/Cyclone1070/sysutil/internal/tool/remove"
)

// tokens returns args unchanged, except that a single argument is split on
// whitespace so callers may pass a whole command line as one string.
func tokens(args []string) []string {
	if len(args) == 1 {
		return strings.Fields(args[0])
	}
	return args
}

// newFlagSet returns a flag set that reports problems only through Parse's
// error.
func newFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	return flags
}

// parseRmArgs accepts -r and -f, clustered or not. Options end at the first
// operand or at "--".
func parseRmArgs(args []string) (remove.RmDTO, error) {
	flags := newFlagSet("rm")
	flags.SetInterspersed(false)
	recursive := flags.BoolP("recursive", "r", false, "remove directories and their contents")
	force := flags.BoolP("force", "f", false, "accepted for compatibility")

	if err := flags.Parse(args); err != nil {
		return remove.RmDTO{}, err
	}
	return remove.RmDTO{Paths: flags.Args(), Recursive: *recursive, Force: *force}, nil
}

// parseMkdirArgs accepts -p and -m MODE anywhere among the operands.
func parseMkdirArgs(args []string) (mkdir.MkdirDTO, error) {
	flags := newFlagSet("mkdir")
	parents := flags.BoolP("parents", "p", false, "create missing parent directories")
	mode := flags.StringP("mode", "m", "", "octal permission bits")

	if err := flags.Parse(args); err != nil {
		return mkdir.MkdirDTO{}, err
	}
	return mkdir.MkdirDTO{Paths: flags.Args(), Parents: *parents, Mode: *mode}, nil
}
