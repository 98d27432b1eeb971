package graphql

import (
	"errors"
	"fmt"
	"math"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/syssam/fluentsql"
	"github.com/syssam/fluentsql/odata"
)

// Root field arguments mapped onto paging options.
var (
	topArgs  = []string{"first", "top", "limit"}
	skipArgs = []string{"skip", "offset"}
)

// CountField is the root selection that requests a total count.
const CountField = "totalCount"

// ParseSelection maps the root field of the only (or first) operation of a
// GraphQL query onto odata options. See ParseOperation.
func ParseSelection(query string, vars map[string]any) (*odata.Options, error) {
	return ParseOperation(query, "", vars)
}

// ParseOperation maps the root field of the named operation onto odata
// options:
//
//   - leaf fields become properties and fields with a selection set become
//     expanded navigations
//   - the first/top/limit and skip/offset arguments become $top and $skip
//   - selecting totalCount on the root field requests a count
//
// Fragments are inlined and __typename is ignored. Only queries are
// supported.
func ParseOperation(query, operation string, vars map[string]any) (*odata.Options, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return nil, fmt.Errorf("graphql: parse query: %w", err)
	}
	op, err := findOperation(doc, operation)
	if err != nil {
		return nil, err
	}
	if op.Operation != ast.Query {
		return nil, fluentsql.NewUnsupportedOperationError("graphql selection", string(op.Operation))
	}
	w := &walker{doc: doc, vars: vars}
	fields, err := w.fields(op.SelectionSet, nil)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fluentsql.NewInvalidOperationError("ParseOperation", "operation selects no field")
	}
	root := fields[0]
	opts := &odata.Options{}
	if opts.Top, err = w.intArg(root, topArgs); err != nil {
		return nil, err
	}
	if opts.Skip, err = w.intArg(root, skipArgs); err != nil {
		return nil, err
	}
	children, err := w.fields(root.SelectionSet, nil)
	if err != nil {
		return nil, err
	}
	var items []*ast.Field
	for _, f := range children {
		if f.Name == CountField && len(f.SelectionSet) == 0 {
			opts.Count = true
			continue
		}
		items = append(items, f)
	}
	if opts.Select, err = w.items(items); err != nil {
		return nil, err
	}
	return opts, nil
}

func findOperation(doc *ast.QueryDocument, name string) (*ast.OperationDefinition, error) {
	if len(doc.Operations) == 0 {
		return nil, fluentsql.NewInvalidOperationError("ParseOperation", "document has no operation")
	}
	if name == "" {
		return doc.Operations[0], nil
	}
	if op := doc.Operations.ForName(name); op != nil {
		return op, nil
	}
	return nil, fluentsql.NewInvalidOperationError("ParseOperation", fmt.Sprintf("operation %q not found", name))
}

type walker struct {
	doc  *ast.QueryDocument
	vars map[string]any
}

// fields flattens a selection set into its fields, inlining fragment
// spreads and inline fragments.
func (w *walker) fields(set ast.SelectionSet, visiting map[string]bool) ([]*ast.Field, error) {
	var out []*ast.Field
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.Field:
			if sel.Name != "__typename" {
				out = append(out, sel)
			}
		case *ast.InlineFragment:
			fs, err := w.fields(sel.SelectionSet, visiting)
			if err != nil {
				return nil, err
			}
			out = append(out, fs...)
		case *ast.FragmentSpread:
			if visiting[sel.Name] {
				return nil, fluentsql.NewInvalidOperationError("ParseOperation", fmt.Sprintf("fragment %q spreads itself", sel.Name))
			}
			def := w.doc.Fragments.ForName(sel.Name)
			if def == nil {
				return nil, fluentsql.NewInvalidOperationError("ParseOperation", fmt.Sprintf("fragment %q is not defined", sel.Name))
			}
			next := make(map[string]bool, len(visiting)+1)
			for k := range visiting {
				next[k] = true
			}
			next[sel.Name] = true
			fs, err := w.fields(def.SelectionSet, next)
			if err != nil {
				return nil, err
			}
			out = append(out, fs...)
		default:
			return nil, fluentsql.NewUnsupportedOperationError("graphql selection", fmt.Sprintf("%T", sel))
		}
	}
	return out, nil
}

// items converts fields into select items. Repeated fields are merged, as
// GraphQL does, keeping the position of their first occurrence.
func (w *walker) items(fields []*ast.Field) ([]odata.SelectItem, error) {
	var (
		out  []odata.SelectItem
		seen = make(map[string]int)
		sets = make(map[string]ast.SelectionSet)
	)
	for _, f := range fields {
		if _, ok := seen[f.Name]; !ok {
			seen[f.Name] = len(out)
			out = append(out, odata.PathItem{Property: f.Name})
		}
		if len(f.SelectionSet) > 0 {
			sets[f.Name] = append(sets[f.Name], f.SelectionSet...)
		}
	}
	for name, set := range sets {
		children, err := w.fields(set, nil)
		if err != nil {
			return nil, err
		}
		items, err := w.items(children)
		if err != nil {
			return nil, err
		}
		out[seen[name]] = odata.ExpandItem{Navigation: name, Items: items}
	}
	return out, nil
}

// intArg returns the first of the named arguments present on f.
func (w *walker) intArg(f *ast.Field, names []string) (*int, error) {
	for _, name := range names {
		arg := f.Arguments.ForName(name)
		if arg == nil || arg.Value == nil {
			continue
		}
		v, err := arg.Value.Value(w.vars)
		if err != nil {
			return nil, fmt.Errorf("graphql: argument %q: %w", name, err)
		}
		if v == nil {
			continue
		}
		n, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("graphql: argument %q: %w", name, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("graphql: argument %q: must not be negative", name)
		}
		return &n, nil
	}
	return nil, nil
}

var errNotInt = errors.New("not an integer")

func toInt(v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, errNotInt
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, errNotInt
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %T", errNotInt, v)
	}
}
