package schema

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toD normalizes the document shapes the driver and encoding/json produce.
// Map keys are sorted so iteration is deterministic.
func toD(v interface{}) (bson.D, bool) {
	switch doc := v.(type) {
	case bson.D:
		return doc, true
	case bson.M:
		return mapToD(doc), true
	case map[string]interface{}:
		return mapToD(doc), true
	}
	return nil, false
}

func mapToD(m map[string]interface{}) bson.D {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := make(bson.D, 0, len(keys))
	for _, k := range keys {
		d = append(d, bson.E{Key: k, Value: m[k]})
	}
	return d
}

func toSlice(v interface{}) ([]interface{}, bool) {
	switch arr := v.(type) {
	case primitive.A:
		return arr, true
	case []interface{}:
		return arr, true
	}
	return nil, false
}

func lookup(v interface{}, key string) (interface{}, bool) {
	doc, ok := toD(v)
	if !ok {
		return nil, false
	}
	for _, e := range doc {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
