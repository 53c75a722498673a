// Package flatten turns generic JSON trees into flat rows.
//
// Nested objects are folded into their parent using dotted keys,
// so {"a":{"b":1}} becomes {"a.b":1}. Arrays are kept as values.
package flatten

import (
	"fmt"
	"sort"
)

const Separator = "."

type Row map[string]any

// Flatten flattens a single JSON object. Non-object input yields an error.
func Flatten(node any) (Row, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, node)
	}
	row := Row{}
	flattenInto(row, "", obj)
	return row, nil
}

// FlattenAll flattens every element of a JSON array.
func FlattenAll(node any) ([]Row, error) {
	list, ok := node.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnArray, node)
	}
	ret := make([]Row, 0, len(list))
	for i, item := range list {
		row, err := Flatten(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		ret = append(ret, row)
	}
	return ret, nil
}

func flattenInto(row Row, prefix string, obj map[string]any) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + Separator + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			flattenInto(row, key, nested)
			continue
		}
		row[key] = v
	}
}

// Keys returns the sorted column names of row.
func (r Row) Keys() []string {
	ret := make([]string, 0, len(r))
	for k := range r {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
