package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

const CurrentConfigVersion = "1"

var SupportedConfigVersions = []string{CurrentConfigVersion}

func IsSupportedConfigVersion(v string) bool {
	for _, s := range SupportedConfigVersions {
		if v == s {
			return true
		}
	}
	return false
}

func SupportedConfigVersionsCSV() string {
	return strings.Join(SupportedConfigVersions, ", ")
}

const (
	// DefaultMaxRosterBytes caps roster files at 1 MiB unless overridden.
	DefaultMaxRosterBytes = 1048576
	// DefaultHookTimeoutMs bounds a single Lua hook invocation.
	DefaultHookTimeoutMs = 200
)

// Hook selects an optional Lua line hook script.
type Hook struct {
	File    string
	HasFile bool
}

// Limits holds tunable safety limits.
type Limits struct {
	MaxRosterBytes int
	HookTimeoutMs  int
}

// Config is the parsed greeting configuration.
//
// Schema:
//   - configVersion: string (required)
//   - greeting: string (optional default phrase, non-empty)
//   - phrases: { key: phrase } (optional named catalog, non-empty values)
//   - hook: { file: string } (optional)
//   - limits: { maxRosterBytes: int, hookTimeoutMs: int } (optional)
type Config struct {
	ConfigVersion string
	Greeting      string
	HasGreeting   bool
	Phrases       map[string]string
	Hook          Hook
	Limits        Limits
}

// Phrase looks up a named phrase from the catalog.
func (c Config) Phrase(key string) (string, bool) {
	p, ok := c.Phrases[key]
	return p, ok
}

// PhraseKeys returns the catalog keys in sorted order.
func (c Config) PhraseKeys() []string {
	keys := make([]string, 0, len(c.Phrases))
	for k := range c.Phrases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load parses and validates a CUE greeting config.
func Load(path string) (Config, error) {
	if filepath.Ext(path) != ".cue" {
		return Config{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %v", err)
	}

	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}

	c := Config{
		Limits: Limits{
			MaxRosterBytes: DefaultMaxRosterBytes,
			HookTimeoutMs:  DefaultHookTimeoutMs,
		},
	}
	cv := v.LookupPath(cue.ParsePath("configVersion"))
	if err := cv.Decode(&c.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(c.ConfigVersion) {
		return Config{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", c.ConfigVersion, SupportedConfigVersionsCSV())
	}

	if err := parseGreeting(v, &c); err != nil {
		return Config{}, err
	}
	if err := parsePhrases(v, &c); err != nil {
		return Config{}, err
	}
	if err := parseHook(v, &c); err != nil {
		return Config{}, err
	}
	if err := parseLimits(v, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}
