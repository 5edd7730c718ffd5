package pathier

import (
	"fmt"
	"slices"
)

// MoveUp returns the ancestor of p whose final segment is the first segment
// equal to name.
//
//	New("a/b/c/d").MoveUp("b") // a/b
func (p *Path) MoveUp(name string) (*Path, error) {
	parts := p.Parts()
	i := slices.Index(parts, name)
	if i < 0 {
		return nil, p.segmentNotFound(name)
	}
	return p.derive(parts[:i+1]...), nil
}

// MoveUnder returns the ancestor of p one level below the last segment equal
// to name. If name is the final segment, p itself is returned.
//
//	New("a/b/c/a/d/e").MoveUnder("a") // a/b/c/a/d
func (p *Path) MoveUnder(name string) (*Path, error) {
	parts := p.Parts()
	i := lastIndex(parts, name)
	if i < 0 {
		return nil, p.segmentNotFound(name)
	}
	return p.derive(parts[:min(i+2, len(parts))]...), nil
}

// Separate returns the relative path after the first segment equal to name,
// starting with name itself when keepName is set.
//
//	New("a/b/c/d/e").Separate("c", false) // d/e
//	New("a/b/c/d/e").Separate("c", true)  // c/d/e
func (p *Path) Separate(name string, keepName bool) (*Path, error) {
	parts := p.Parts()
	i := slices.Index(parts, name)
	if i < 0 {
		return nil, p.segmentNotFound(name)
	}
	if keepName {
		return p.derive(parts[i:]...), nil
	}
	return p.derive(parts[i+1:]...), nil
}

func lastIndex(parts []string, name string) int {
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == name {
			return i
		}
	}
	return -1
}

func (p *Path) segmentNotFound(name string) error {
	return fmt.Errorf("%w: %s is not a parent of %s", ErrSegmentNotFound, name, p)
}
