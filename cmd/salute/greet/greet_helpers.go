package greet

import (
	"errors"
	"fmt"
	"time"

	"github.com/flarebyte/salute/internal/config"
	"github.com/flarebyte/salute/internal/greeter"
	"github.com/flarebyte/salute/internal/hook"
	"github.com/flarebyte/salute/internal/roster"
)

// resolveGreeter picks the phrase by precedence: --greeting, --phrase,
// config greeting, built-in default.
func resolveGreeter(cfg *config.Config) (greeter.Greeter, error) {
	if flagGreeting != "" {
		return greeter.New(flagGreeting)
	}
	if flagPhrase != "" {
		if cfg == nil {
			return greeter.Greeter{}, errors.New("missing required flag: --config (needed by --phrase)")
		}
		phrase, ok := cfg.Phrase(flagPhrase)
		if !ok {
			return greeter.Greeter{}, fmt.Errorf("unknown phrase key: %s", flagPhrase)
		}
		return greeter.New(phrase)
	}
	if cfg != nil && cfg.HasGreeting {
		return greeter.New(cfg.Greeting)
	}
	return greeter.Default(), nil
}

// collectNames merges positional args with the roster file, in that order.
// With no names from either source, "World" is greeted.
func collectNames(cfg *config.Config, args []string) ([]string, error) {
	names := append([]string{}, args...)
	if flagRoster != "" {
		maxBytes := roster.DefaultMaxBytes
		if cfg != nil {
			maxBytes = cfg.Limits.MaxRosterBytes
		}
		more, err := roster.Load(flagRoster, maxBytes)
		if err != nil {
			return nil, err
		}
		names = append(names, more...)
	}
	if len(names) == 0 {
		names = []string{"World"}
	}
	return names, nil
}

// loadHook prefers the --lua flag over the config hook block.
func loadHook(cfg *config.Config) (*hook.Hook, error) {
	path := flagLua
	timeout := hook.DefaultTimeout
	if cfg != nil {
		timeout = time.Duration(cfg.Limits.HookTimeoutMs) * time.Millisecond
		if path == "" && cfg.Hook.HasFile {
			path = cfg.Hook.File
		}
	}
	if path == "" {
		return nil, nil
	}
	return hook.Load(path, timeout)
}
