package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	d := t.TempDir()
	cfg := filepath.Join(d, "salute.cue")
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	return cfg
}

func TestLoadFullConfig(t *testing.T) {
	cfg := writeConfig(t, `{
  configVersion: "1"
  greeting: "Howdy"
  phrases: {
    formal: "Greetings"
    casual: "Hey"
  }
  hook: { file: "upper.lua" }
  limits: { maxRosterBytes: 2048, hookTimeoutMs: 50 }
}
`)
	c, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.HasGreeting || c.Greeting != "Howdy" {
		t.Fatalf("unexpected greeting: %+v", c)
	}
	if p, ok := c.Phrase("formal"); !ok || p != "Greetings" {
		t.Fatalf("unexpected formal phrase: %q %v", p, ok)
	}
	keys := c.PhraseKeys()
	if len(keys) != 2 || keys[0] != "casual" || keys[1] != "formal" {
		t.Fatalf("unexpected phrase keys: %v", keys)
	}
	if !c.Hook.HasFile || c.Hook.File != "upper.lua" {
		t.Fatalf("unexpected hook: %+v", c.Hook)
	}
	if c.Limits.MaxRosterBytes != 2048 || c.Limits.HookTimeoutMs != 50 {
		t.Fatalf("unexpected limits: %+v", c.Limits)
	}
}

func TestLoadMinimalConfigDefaults(t *testing.T) {
	cfg := writeConfig(t, "{\n  configVersion: \"1\"\n}\n")
	c, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HasGreeting {
		t.Fatalf("no greeting expected: %+v", c)
	}
	if c.Limits.MaxRosterBytes != DefaultMaxRosterBytes {
		t.Fatalf("unexpected maxRosterBytes: %d", c.Limits.MaxRosterBytes)
	}
	if c.Limits.HookTimeoutMs != DefaultHookTimeoutMs {
		t.Fatalf("unexpected hookTimeoutMs: %d", c.Limits.HookTimeoutMs)
	}
}

func TestLoadRejectsNonCueExtension(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "salute.yaml")
	if err := os.WriteFile(p, []byte("configVersion: \"1\"\n"), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	_, err := Load(p)
	if err == nil || err.Error() != "unsupported config format: expected .cue" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingConfigVersion(t *testing.T) {
	cfg := writeConfig(t, "{\n  greeting: \"Hello\"\n}\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "missing required field: configVersion" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadUnknownConfigVersion(t *testing.T) {
	cfg := writeConfig(t, "{\n  configVersion: \"2\"\n}\n")
	_, err := Load(cfg)
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "unsupported configVersion: \"2\" (supported: 1)"
	if err.Error() != want {
		t.Fatalf("unexpected error\nwant: %s\n got: %s", want, err.Error())
	}
}

func TestLoadEmptyGreeting(t *testing.T) {
	cfg := writeConfig(t, "{\n  configVersion: \"1\"\n  greeting: \"\"\n}\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "invalid value for greeting: must be non-empty" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadEmptyPhraseValue(t *testing.T) {
	cfg := writeConfig(t, "{\n  configVersion: \"1\"\n  phrases: { formal: \"\" }\n}\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "invalid value for phrases.formal: must be non-empty" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadInvalidLimit(t *testing.T) {
	cfg := writeConfig(t, "{\n  configVersion: \"1\"\n  limits: { hookTimeoutMs: 0 }\n}\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "invalid value for limits.hookTimeoutMs: must be positive" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadHookMissingFile(t *testing.T) {
	cfg := writeConfig(t, "{\n  configVersion: \"1\"\n  hook: {}\n}\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "missing required field: hook.file" {
		t.Fatalf("unexpected error: %v", err)
	}
}
