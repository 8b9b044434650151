package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tychoish/dsa/ers"
)

// flagBindings maps configuration keys to command line flags.
var flagBindings = map[string]string{
	"config":    "config",
	"log.level": "log-level",
	"command":   "command",
	"algorithm": "algorithm",
	"order":     "order",
	"values":    "values",
}

// InitConfig uses viper to assemble the configuration from, in order
// of precedence: command line flags, DSA_ prefixed environment
// variables, an optional config file, and defaults. The config file is
// only read when one is named with --config or DSA_CONFIG, and a named
// file that cannot be read is an error.
//
// Positional arguments after the flags are treated as additional
// values.
func InitConfig(args []string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("command", "sort")
	v.SetDefault("algorithm", "linked")
	v.SetDefault("order", "")
	v.SetDefault("values", "")

	v.AutomaticEnv()
	v.SetEnvPrefix("dsa")
	// nested keys such as log.level map to DSA_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	fs := pflag.NewFlagSet("dsa", pflag.ContinueOnError)
	fs.String("config", "", "path to a configuration file")
	fs.String("log-level", "info", "logging level (trace, debug, info, warn, error)")
	fs.StringP("command", "c", "sort", "operation to run: sort, list, or heap")
	fs.StringP("algorithm", "a", "linked", "sorting algorithm for the sort command")
	fs.StringP("order", "o", "", "asc or desc for sort; min or max for heap")
	fs.String("values", "", "comma or space separated numbers; null for an absent value")

	if err := fs.Parse(args); err != nil {
		return nil, ers.Wrap(ers.ErrInvalidInput, err.Error())
	}

	for key, flag := range flagBindings {
		if err := v.BindEnv(key); err != nil {
			return nil, ers.Wrapf(err, "binding env for %q", key)
		}
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, ers.Wrapf(err, "binding flag %q", flag)
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, ers.Wrapf(err, "reading config file %q", path)
		}
	}

	if extra := fs.Args(); len(extra) > 0 {
		values, err := valuesOf(v)
		if err != nil {
			return nil, err
		}
		v.Set("values", strings.TrimSpace(values+" "+strings.Join(extra, " ")))
	}

	return v, nil
}

// valuesOf renders the values setting as a single string. Config files
// may give values as a string or as a list, where a list entry of null
// is an absent value.
func valuesOf(v *viper.Viper) (string, error) {
	switch raw := v.Get("values").(type) {
	case nil:
		return "", nil
	case string:
		return raw, nil
	case []string:
		return strings.Join(raw, " "), nil
	case []any:
		parts := make([]string, 0, len(raw))
		for _, item := range raw {
			switch x := item.(type) {
			case nil:
				parts = append(parts, "null")
			case string, int, int64, float64:
				parts = append(parts, fmt.Sprint(x))
			default:
				return "", ers.InvalidInput("value %v of type %T is not a number", x, x)
			}
		}
		return strings.Join(parts, " "), nil
	default:
		return "", ers.InvalidInput("values of type %T", raw)
	}
}
