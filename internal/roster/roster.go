package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxBytes caps roster files at 1 MiB unless the config overrides it.
const DefaultMaxBytes = 1048576

// Load reads a YAML roster of recipient names.
//
// The file must hold a mapping with a single `names` field listing non-empty
// strings. Unknown top-level fields are rejected so typos fail loudly.
func Load(path string, maxBytes int) ([]string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	if info.Size() > int64(maxBytes) {
		return nil, fmt.Errorf("roster %s exceeds maxRosterBytes limit: %d", path, maxBytes)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	var y any
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, fmt.Errorf("invalid roster %s: %v", path, err)
	}
	ym, ok := y.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid roster %s: top-level must be mapping", path)
	}
	for k := range ym {
		if k != "names" {
			return nil, fmt.Errorf("invalid roster %s: unknown top-level field: %s", path, k)
		}
	}
	raw, ok := ym["names"]
	if !ok {
		return nil, fmt.Errorf("invalid roster %s: missing required field: names", path)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid roster %s: invalid type for field: names (expected list)", path)
	}
	names := make([]string, 0, len(list))
	for i, entry := range list {
		s, ok := entry.(string)
		if !ok {
			return nil, fmt.Errorf("invalid roster %s: invalid type for names[%d] (expected string)", path, i)
		}
		if s == "" {
			return nil, fmt.Errorf("invalid roster %s: empty name at names[%d]", path, i)
		}
		names = append(names, s)
	}
	return names, nil
}
