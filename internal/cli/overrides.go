package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const flagSet = "set"

// ErrInvalidOverride is returned for a --set value that is not key=value.
var ErrInvalidOverride = errors.New("invalid override, want key=value")

func registerOverrideFlag(fs *pflag.FlagSet) {
	fs.StringArrayP(flagSet, "s", nil, "configuration override as dotted key=value (repeatable), e.g. flyway.locations=db/sql")
}

// parseOverrides turns repeated key=value arguments into a map. The value is
// everything after the first '='; a later argument for the same key wins.
func parseOverrides(args []string) (map[string]string, error) {
	overrides := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOverride, arg)
		}
		overrides[key] = value
	}
	return overrides, nil
}

func overridesFromFlags(fs *pflag.FlagSet) (map[string]string, error) {
	args, err := fs.GetStringArray(flagSet)
	if err != nil {
		return nil, fmt.Errorf("error reading flag --%s: %w", flagSet, err)
	}
	return parseOverrides(args)
}
