package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	d := t.TempDir()
	p := filepath.Join(d, "names.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return p
}

func TestLoadNames(t *testing.T) {
	p := writeRoster(t, "names:\n  - Alice\n  - Bob\n")
	names, err := Load(p, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(names) != 2 || names[0] != "Alice" || names[1] != "Bob" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	p := writeRoster(t, "names: [Alice]\nextra: true\n")
	_, err := Load(p, 0)
	if err == nil || !strings.Contains(err.Error(), "unknown top-level field: extra") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsMissingNames(t *testing.T) {
	p := writeRoster(t, "other: [Alice]\n")
	_, err := Load(p, 0)
	if err == nil || !strings.Contains(err.Error(), "unknown top-level field: other") {
		t.Fatalf("unexpected error: %v", err)
	}
	p = writeRoster(t, "{}\n")
	_, err = Load(p, 0)
	if err == nil || !strings.Contains(err.Error(), "missing required field: names") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsNonMappingTopLevel(t *testing.T) {
	p := writeRoster(t, "- Alice\n- Bob\n")
	_, err := Load(p, 0)
	if err == nil || !strings.Contains(err.Error(), "top-level must be mapping") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsEmptyName(t *testing.T) {
	p := writeRoster(t, "names:\n  - Alice\n  - \"\"\n")
	_, err := Load(p, 0)
	if err == nil || !strings.Contains(err.Error(), "empty name at names[1]") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadEnforcesSizeLimit(t *testing.T) {
	p := writeRoster(t, "names:\n  - Alice\n")
	_, err := Load(p, 4)
	if err == nil || !strings.Contains(err.Error(), "exceeds maxRosterBytes limit: 4") {
		t.Fatalf("unexpected error: %v", err)
	}
}
