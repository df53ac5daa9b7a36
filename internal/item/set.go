package item

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrComplementUnsupported is the panic value of Set.Complement.
var ErrComplementUnsupported = errors.New("item set has no universe to complement against")

// Set is a deduplicating collection of items grouped by category.
// Iteration yields categories in ascending order and, within a category,
// items in insertion order. The zero value is an empty set.
type Set struct {
	groups map[Category][]Item
}

// NewSet creates a set holding the given items. Duplicates are dropped.
func NewSet(items ...Item) *Set {
	s := &Set{groups: make(map[Category][]Item)}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts it unless an equal item is present. It reports whether the
// set changed.
func (s *Set) Add(it Item) bool {
	if s.Contains(it) {
		return false
	}
	if s.groups == nil {
		s.groups = make(map[Category][]Item)
	}
	c := it.Category()
	s.groups[c] = append(s.groups[c], it)
	return true
}

// Remove deletes the item equal to it. It reports whether the set changed.
func (s *Set) Remove(it Item) bool {
	c := it.Category()
	group := s.groups[c]
	i := slices.IndexFunc(group, it.Equal)
	if i < 0 {
		return false
	}
	group = slices.Delete(group, i, i+1)
	if len(group) == 0 {
		delete(s.groups, c)
	} else {
		s.groups[c] = group
	}
	return true
}

// Contains reports whether an item equal to it is present.
func (s *Set) Contains(it Item) bool {
	return slices.IndexFunc(s.groups[it.Category()], it.Equal) >= 0
}

// Len returns the number of items.
func (s *Set) Len() int {
	n := 0
	for _, group := range s.groups {
		n += len(group)
	}
	return n
}

// Clear removes every item.
func (s *Set) Clear() {
	clear(s.groups)
}

// ClearCategory removes every item of category c and returns how many were
// removed.
func (s *Set) ClearCategory(c Category) int {
	n := len(s.groups[c])
	delete(s.groups, c)
	return n
}

// All yields every item in draw order.
func (s *Set) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for c := range categoryCount {
			for _, it := range s.groups[c] {
				if !yield(it) {
					return
				}
			}
		}
	}
}

// InCategory yields the items of one category in insertion order.
func (s *Set) InCategory(c Category) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range s.groups[c] {
			if !yield(it) {
				return
			}
		}
	}
}

// Items returns every item in draw order.
func (s *Set) Items() []Item {
	return slices.Collect(s.All())
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	out := &Set{groups: make(map[Category][]Item, len(s.groups))}
	for c, group := range s.groups {
		out.groups[c] = slices.Clone(group)
	}
	return out
}

// Equal reports whether both sets hold equal items, ignoring order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for it := range s.All() {
		if !other.Contains(it) {
			return false
		}
	}
	return true
}

// UnionWith adds every item of other to s.
func (s *Set) UnionWith(other *Set) {
	for _, it := range other.Items() {
		s.Add(it)
	}
}

// IntersectWith keeps only the items of s that other contains.
func (s *Set) IntersectWith(other *Set) {
	s.retain(other.Contains)
}

// DifferenceWith removes every item of s that other contains.
func (s *Set) DifferenceWith(other *Set) {
	s.retain(func(it Item) bool { return !other.Contains(it) })
}

// SymmetricDifferenceWith keeps the items present in exactly one of s and
// other.
func (s *Set) SymmetricDifferenceWith(other *Set) {
	for _, it := range other.Items() {
		if !s.Remove(it) {
			s.Add(it)
		}
	}
}

// Union returns a new set holding the items of s and other.
func (s *Set) Union(other *Set) *Set {
	out := s.Clone()
	out.UnionWith(other)
	return out
}

// Intersect returns a new set holding the items common to s and other.
func (s *Set) Intersect(other *Set) *Set {
	out := s.Clone()
	out.IntersectWith(other)
	return out
}

// Difference returns a new set holding the items of s missing from other.
func (s *Set) Difference(other *Set) *Set {
	out := s.Clone()
	out.DifferenceWith(other)
	return out
}

// SymmetricDifference returns a new set holding the items present in
// exactly one of s and other.
func (s *Set) SymmetricDifference(other *Set) *Set {
	out := s.Clone()
	out.SymmetricDifferenceWith(other)
	return out
}

// Complement always panics with ErrComplementUnsupported: items have no
// finite universe.
func (s *Set) Complement() *Set {
	panic(ErrComplementUnsupported)
}

// Draw draws every item in draw order, stopping at the first error.
func (s *Set) Draw(t Target) error {
	for it := range s.All() {
		if err := it.Draw(t); err != nil {
			return fmt.Errorf("item: drawing %s on template %d: %w", it.Category(), it.TemplateIndex(), err)
		}
	}
	return nil
}

func (s *Set) retain(keep func(Item) bool) {
	for c, group := range s.groups {
		group = slices.DeleteFunc(group, func(it Item) bool { return !keep(it) })
		if len(group) == 0 {
			delete(s.groups, c)
		} else {
			s.groups[c] = group
		}
	}
}
