// Package flagx lets several components parse the command line
// independently: the config layer picks out its own flags, the CLI picks out
// the help flag and the positional address, and neither trips over the
// other's arguments.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args belonging to the given flags.
// valueFlags take a value (either "-f value" or "-f=value"); boolFlags never
// consume the following argument, so a positional right after them survives.
func FilterArgs(args []string, valueFlags, boolFlags []string) []string {
	takesValue := make(map[string]struct{}, len(valueFlags))
	for _, f := range valueFlags {
		takesValue[f] = struct{}{}
	}
	isBool := make(map[string]struct{}, len(boolFlags))
	for _, f := range boolFlags {
		isBool[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "-flag=value" form: keep the whole argument.
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			_, v := takesValue[name]
			_, b := isBool[name]
			if v || b {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := isBool[arg]; ok {
			filtered = append(filtered, arg)
			continue
		}

		if _, ok := takesValue[arg]; ok {
			filtered = append(filtered, arg)
			// The next argument is this flag's value unless it looks
			// like another flag.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// Positionals returns the non-flag arguments, skipping every flag and the
// value of any flag in valueFlags.
func Positionals(args []string, valueFlags []string) []string {
	takesValue := make(map[string]struct{}, len(valueFlags))
	for _, f := range valueFlags {
		takesValue[f] = struct{}{}
	}

	positionals := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if _, ok := takesValue[arg]; ok {
				if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
					i++
				}
			}
			continue
		}
		positionals = append(positionals, arg)
	}
	return positionals
}

// HasHelp reports whether args contain -h or --help.
func HasHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" || arg == "-help" {
			return true
		}
	}
	return false
}

// ConfigFileFlags extracts the config file path given via -c or -config.
// Only these flags are parsed; everything else is ignored so the rest of the
// command line stays available to other components. Returns "" when absent.
func ConfigFileFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"}, nil)

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
