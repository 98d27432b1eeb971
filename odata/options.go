package odata

import "strings"

// Options is a parsed query: the selection tree, paging and whether a
// total count was requested.
type Options struct {
	Select []SelectItem
	Top    *int
	Skip   *int
	Count  bool
}

// SelectItem is one entry of a selection tree. The mapper understands
// PathItem and ExpandItem; any other implementation is rejected.
type SelectItem interface {
	String() string
}

// PathItem selects a single property.
type PathItem struct {
	Property string
}

// String returns the property name.
func (p PathItem) String() string { return p.Property }

// ExpandItem selects properties of a navigation. An empty Items list
// selects every property of the navigation.
type ExpandItem struct {
	Navigation string
	Items      []SelectItem
}

// String renders the item as Navigation(item,item).
func (e ExpandItem) String() string {
	if len(e.Items) == 0 {
		return e.Navigation
	}
	items := make([]string, len(e.Items))
	for i, it := range e.Items {
		items[i] = it.String()
	}
	return e.Navigation + "(" + strings.Join(items, ",") + ")"
}

// Int returns a pointer to n, for building Options by hand.
func Int(n int) *int { return &n }
