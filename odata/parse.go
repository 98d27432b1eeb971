package odata

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/syssam/fluentsql"
)

// Supported system query options.
const (
	OptionSelect      = "$select"
	OptionExpand      = "$expand"
	OptionTop         = "$top"
	OptionSkip        = "$skip"
	OptionCount       = "$count"
	OptionInlineCount = "$inlinecount"
)

var supportedOptions = map[string]bool{
	OptionSelect:      true,
	OptionExpand:      true,
	OptionTop:         true,
	OptionSkip:        true,
	OptionCount:       true,
	OptionInlineCount: true,
}

// ParseQuery parses a raw query string such as
// "$select=Id,Contact/Name&$expand=Contact&$top=10".
// A leading '?' is ignored.
func ParseQuery(raw string) (*Options, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, &ParseError{Option: "query", Value: raw, Err: err}
	}
	return ParseValues(values)
}

// ParseValues parses already decoded query values. Parameters that do not
// start with '$' are ignored; unsupported system options such as $filter
// are rejected.
func ParseValues(values url.Values) (*Options, error) {
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if strings.HasPrefix(key, "$") && !supportedOptions[key] {
			return nil, &ParseError{
				Option: key,
				Value:  values.Get(key),
				Err:    fluentsql.NewUnsupportedOperationError("query option", key),
			}
		}
	}
	opts := &Options{}
	expanded, err := parseExpand(values.Get(OptionExpand))
	if err != nil {
		return nil, err
	}
	if raw := values.Get(OptionSelect); strings.TrimSpace(raw) != "" {
		if opts.Select, err = parseSelect(raw, expanded); err != nil {
			return nil, err
		}
	}
	if opts.Top, err = parseNonNegative(OptionTop, values); err != nil {
		return nil, err
	}
	if opts.Skip, err = parseNonNegative(OptionSkip, values); err != nil {
		return nil, err
	}
	if opts.Count, err = parseCount(values); err != nil {
		return nil, err
	}
	return opts, nil
}

// parseExpand returns every expanded navigation path, including the
// prefixes of nested paths: "Contact/Address" expands "Contact" too.
func parseExpand(raw string) (map[string]bool, error) {
	expanded := make(map[string]bool)
	for _, path := range splitList(raw) {
		segments, err := splitPath(OptionExpand, path)
		if err != nil {
			return nil, err
		}
		for i := range segments {
			expanded[strings.Join(segments[:i+1], "/")] = true
		}
	}
	return expanded, nil
}

func parseSelect(raw string, expanded map[string]bool) ([]SelectItem, error) {
	root := newSelectTree()
	for _, path := range splitList(raw) {
		segments, err := splitPath(OptionSelect, path)
		if err != nil {
			return nil, err
		}
		if err := root.add(segments, "", expanded); err != nil {
			return nil, &ParseError{Option: OptionSelect, Value: path, Err: err}
		}
	}
	return root.items(), nil
}

func parseNonNegative(option string, values url.Values) (*int, error) {
	raw := strings.TrimSpace(values.Get(option))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ParseError{Option: option, Value: raw, Err: err}
	}
	if n < 0 {
		return nil, &ParseError{Option: option, Value: raw, Err: errors.New("must not be negative")}
	}
	return &n, nil
}

func parseCount(values url.Values) (bool, error) {
	count := false
	if raw := strings.TrimSpace(values.Get(OptionCount)); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return false, &ParseError{Option: OptionCount, Value: raw, Err: err}
		}
		count = v
	}
	switch raw := strings.TrimSpace(values.Get(OptionInlineCount)); strings.ToLower(raw) {
	case "":
	case "allpages":
		count = true
	case "none":
	default:
		return false, &ParseError{Option: OptionInlineCount, Value: raw, Err: errors.New("expected allpages or none")}
	}
	return count, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func splitPath(option, path string) ([]string, error) {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, &ParseError{Option: option, Value: path, Err: errors.New("empty path segment")}
		}
		segments[i] = s
	}
	return segments, nil
}

// selectTree collects selected paths into nested items, keeping the order in
// which each property or navigation was first seen.
type selectTree struct {
	entries []*selectEntry
	seen    map[string]*selectEntry
}

type selectEntry struct {
	property string
	nav      string
	all      bool
	child    *selectTree
}

func newSelectTree() *selectTree {
	return &selectTree{seen: make(map[string]*selectEntry)}
}

func (t *selectTree) add(segments []string, prefix string, expanded map[string]bool) error {
	name := segments[0]
	full := prefix + name
	if len(segments) == 1 {
		if expanded[full] {
			t.navigation(name).all = true
			return nil
		}
		if _, ok := t.seen["p:"+name]; !ok {
			e := &selectEntry{property: name}
			t.seen["p:"+name] = e
			t.entries = append(t.entries, e)
		}
		return nil
	}
	if !expanded[full] {
		return fmt.Errorf("navigation %q is not expanded", full)
	}
	return t.navigation(name).child.add(segments[1:], full+"/", expanded)
}

func (t *selectTree) navigation(name string) *selectEntry {
	if e, ok := t.seen["n:"+name]; ok {
		return e
	}
	e := &selectEntry{nav: name, child: newSelectTree()}
	t.seen["n:"+name] = e
	t.entries = append(t.entries, e)
	return e
}

func (t *selectTree) items() []SelectItem {
	items := make([]SelectItem, 0, len(t.entries))
	for _, e := range t.entries {
		if e.child == nil {
			items = append(items, PathItem{Property: e.property})
			continue
		}
		item := ExpandItem{Navigation: e.nav}
		if !e.all {
			item.Items = e.child.items()
		}
		items = append(items, item)
	}
	return items
}
