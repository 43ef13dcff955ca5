package cli

import (
	"fmt"
	"strings"
)

// pair is one key=value argument.
type pair struct {
	Key   string
	Value string
}

// isPair reports whether arg looks like key=value.
func isPair(arg string) bool {
	return strings.Contains(arg, "=")
}

// parsePairs splits key=value arguments. The value may itself contain '='.
func parsePairs(args []string) ([]pair, error) {
	pairs := make([]pair, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, NewExitError(ExitCommandError,
				fmt.Sprintf("invalid pair %q: expected key=value", arg))
		}
		if key == "" {
			return nil, NewExitError(ExitCommandError,
				fmt.Sprintf("invalid pair %q: empty key", arg))
		}
		pairs = append(pairs, pair{Key: key, Value: value})
	}
	return pairs, nil
}
