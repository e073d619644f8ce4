// Package filter provides tag-intersection filtering for resume sections.
package filter

import (
	"sort"
	"strings"
)

// Selector chooses which tagged items survive a filter. It is either All,
// which passes every item through untouched, or a fixed tag set.
// The zero value is an empty tag set and matches nothing.
type Selector struct {
	all  bool
	tags map[string]struct{}
}

// All returns a selector that disables filtering
func All() Selector {
	return Selector{all: true}
}

// Tags returns a selector that keeps items sharing at least one of the given tags.
// Tags are compared as exact strings.
func Tags(tags ...string) Selector {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return Selector{tags: set}
}

// IsAll reports whether the selector disables filtering
func (s Selector) IsAll() bool {
	return s.all
}

// Matches reports whether an item with the given tags is kept.
// Under an active tag set an item without tags never matches.
func (s Selector) Matches(tags []string) bool {
	if s.all {
		return true
	}
	for _, tag := range tags {
		if _, ok := s.tags[tag]; ok {
			return true
		}
	}
	return false
}

// Values returns the target tags in sorted order, or nil for All
func (s Selector) Values() []string {
	if s.all {
		return nil
	}
	values := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		values = append(values, tag)
	}
	sort.Strings(values)
	return values
}

func (s Selector) String() string {
	if s.all {
		return "all"
	}
	return strings.Join(s.Values(), ", ")
}
