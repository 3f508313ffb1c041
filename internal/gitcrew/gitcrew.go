package gitcrew

import (
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Authors returns the distinct commit author names of the repository at
// path, sorted. Authors with an empty name are skipped.
func Authors(path string) ([]string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read commit log: %w", err)
	}
	seen := map[string]struct{}{}
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Author.Name != "" {
			seen[c.Author.Name] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read commit log: %w", err)
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
