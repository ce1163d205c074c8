package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CollisionResolver hands out target paths for one rename plan. A target
// requested a second time gets "_N" inserted before the extension, N starting
// at 2, so two people with the same name keep separate photos.
type CollisionResolver struct {
	next map[string]int // claimed target -> next suffix to try
}

// NewCollisionResolver returns an empty resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{next: make(map[string]int)}
}

// Resolve claims target, or the first free "<stem>_N<ext>" variant of it.
func (r *CollisionResolver) Resolve(target string) string {
	n, taken := r.next[target]
	if !taken {
		r.next[target] = 2
		return target
	}

	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)
	for ; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, taken := r.next[candidate]; !taken {
			r.next[target] = n + 1
			r.next[candidate] = 2
			return candidate
		}
	}
}
