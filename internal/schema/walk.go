package schema

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchFunc decides whether the value at a dotted path should be transformed.
type MatchFunc func(path string) bool

// TransformFunc replaces a matched value.
type TransformFunc func(path string, value interface{}) (interface{}, error)

// Walk returns a copy of doc in which every value whose dotted path satisfies
// match is replaced by transform. Array elements share their parent's path and
// matched values are not descended into. The input is never modified.
func Walk(doc interface{}, match MatchFunc, transform TransformFunc) (interface{}, error) {
	return walk("", doc, match, transform)
}

func walk(path string, v interface{}, match MatchFunc, transform TransformFunc) (interface{}, error) {
	switch node := v.(type) {
	case bson.D:
		out := make(bson.D, 0, len(node))
		for _, e := range node {
			val, err := visit(joinPath(path, e.Key), e.Value, match, transform)
			if err != nil {
				return nil, err
			}
			out = append(out, bson.E{Key: e.Key, Value: val})
		}
		return out, nil
	case bson.M:
		out := make(bson.M, len(node))
		for k, child := range node {
			val, err := visit(joinPath(path, k), child, match, transform)
			if err != nil {
				return nil, err
			}
			out[k] = val
		}
		return out, nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(node))
		for k, child := range node {
			val, err := visit(joinPath(path, k), child, match, transform)
			if err != nil {
				return nil, err
			}
			out[k] = val
		}
		return out, nil
	case primitive.A:
		out, err := walkSlice(path, node, match, transform)
		return primitive.A(out), err
	case []interface{}:
		return walkSlice(path, node, match, transform)
	}
	return v, nil
}

func visit(path string, v interface{}, match MatchFunc, transform TransformFunc) (interface{}, error) {
	if match(path) {
		return transform(path, v)
	}
	return walk(path, v, match, transform)
}

func walkSlice(path string, items []interface{}, match MatchFunc, transform TransformFunc) ([]interface{}, error) {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		val, err := walk(path, item, match, transform)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}
