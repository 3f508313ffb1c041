package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

func parseGreeting(v cue.Value, c *Config) error {
	gv := v.LookupPath(cue.ParsePath("greeting"))
	if !gv.Exists() {
		return nil
	}
	if gv.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: greeting (expected string)")
	}
	if err := gv.Decode(&c.Greeting); err != nil {
		return fmt.Errorf("invalid value for greeting: %v", err)
	}
	if c.Greeting == "" {
		return fmt.Errorf("invalid value for greeting: must be non-empty")
	}
	c.HasGreeting = true
	return nil
}

func parsePhrases(v cue.Value, c *Config) error {
	pv := v.LookupPath(cue.ParsePath("phrases"))
	if !pv.Exists() {
		return nil
	}
	if pv.Kind() != cue.StructKind {
		return fmt.Errorf("invalid type for field: phrases (expected struct)")
	}
	phrases := map[string]string{}
	if err := pv.Decode(&phrases); err != nil {
		return fmt.Errorf("invalid value for phrases: %v", err)
	}
	for key, phrase := range phrases {
		if phrase == "" {
			return fmt.Errorf("invalid value for phrases.%s: must be non-empty", key)
		}
	}
	c.Phrases = phrases
	return nil
}

func parseHook(v cue.Value, c *Config) error {
	hv := v.LookupPath(cue.ParsePath("hook"))
	if !hv.Exists() {
		return nil
	}
	fv := hv.LookupPath(cue.ParsePath("file"))
	if !fv.Exists() {
		return fmt.Errorf("missing required field: hook.file")
	}
	if fv.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: hook.file (expected string)")
	}
	if err := fv.Decode(&c.Hook.File); err != nil {
		return fmt.Errorf("invalid value for hook.file: %v", err)
	}
	if c.Hook.File == "" {
		return fmt.Errorf("invalid value for hook.file: must be non-empty")
	}
	c.Hook.HasFile = true
	return nil
}

func parseLimits(v cue.Value, c *Config) error {
	lv := v.LookupPath(cue.ParsePath("limits"))
	if !lv.Exists() {
		return nil
	}
	if err := parseLimitInt(lv, "maxRosterBytes", &c.Limits.MaxRosterBytes); err != nil {
		return err
	}
	return parseLimitInt(lv, "hookTimeoutMs", &c.Limits.HookTimeoutMs)
}

func parseLimitInt(lv cue.Value, name string, dst *int) error {
	fv := lv.LookupPath(cue.ParsePath(name))
	if !fv.Exists() {
		return nil
	}
	if fv.Kind() != cue.IntKind {
		return fmt.Errorf("invalid type for field: limits.%s (expected int)", name)
	}
	var n int
	if err := fv.Decode(&n); err != nil {
		return fmt.Errorf("invalid value for limits.%s: %v", name, err)
	}
	if n <= 0 {
		return fmt.Errorf("invalid value for limits.%s: must be positive", name)
	}
	*dst = n
	return nil
}
