package schema

import (
	"sort"
)

// FieldSet is a set of dotted field paths.
type FieldSet map[string]struct{}

func NewFieldSet(paths ...string) FieldSet {
	fs := make(FieldSet, len(paths))
	for _, p := range paths {
		fs[p] = struct{}{}
	}
	return fs
}

func (fs FieldSet) Has(path string) bool {
	_, ok := fs[path]
	return ok
}

func (fs FieldSet) Sorted() []string {
	out := make([]string, 0, len(fs))
	for p := range fs {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// DateFields returns the paths of all date-typed properties declared by a
// validator. It accepts either a full validator ({"$jsonSchema": {...}}) or
// the bare JSON schema.
func DateFields(validator interface{}) FieldSet {
	fields := NewFieldSet()
	root := validator
	if js, ok := lookup(validator, "$jsonSchema"); ok {
		root = js
	}
	collectDateFields(root, "", fields)
	return fields
}

func collectDateFields(node interface{}, prefix string, fields FieldSet) {
	props, ok := lookup(node, "properties")
	if !ok {
		return
	}
	entries, ok := toD(props)
	if !ok {
		return
	}
	for _, e := range entries {
		path := joinPath(prefix, e.Key)
		def := e.Value

		if hasBSONType(def, "date") {
			fields[path] = struct{}{}
			continue
		}
		if hasBSONType(def, "array") {
			if items, ok := lookup(def, "items"); ok {
				if hasBSONType(items, "date") {
					fields[path] = struct{}{}
					continue
				}
				collectDateFields(items, path, fields)
			}
			continue
		}
		collectDateFields(def, path, fields)
	}
}

// hasBSONType handles both "bsonType": "date" and "bsonType": ["date", "null"].
func hasBSONType(def interface{}, want string) bool {
	bt, ok := lookup(def, "bsonType")
	if !ok {
		return false
	}
	if s, ok := bt.(string); ok {
		return s == want
	}
	if list, ok := toSlice(bt); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}
