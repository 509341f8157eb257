package schema

import (
	"fmt"
	"strings"

	"github.com/yetorm/virtprops/reflection"
)

// ClassTree returns the ancestors of class from the root down to class itself,
// the base entity excluded
func ClassTree(r reflection.Reflector, class, base string) ([]string, error) {
	var (
		tree    []string
		current = strings.TrimPrefix(class, `\`)
		seen    = map[string]bool{}
	)
	base = strings.TrimPrefix(base, `\`)

	for current != base {
		if seen[current] {
			return nil, fmt.Errorf("%w: %s has an inheritance cycle", ErrNotEntity, class)
		}
		seen[current] = true
		tree = append(tree, current)

		parent, ok := r.Parent(current)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotEntity, class)
		}
		current = strings.TrimPrefix(parent, `\`)
	}

	if len(tree) == 0 {
		return nil, fmt.Errorf("%w: %s is the base entity", ErrNotEntity, class)
	}

	for i, j := 0, len(tree)-1; i < j; i, j = i+1, j-1 {
		tree[i], tree[j] = tree[j], tree[i]
	}
	return tree, nil
}
