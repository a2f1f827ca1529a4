package schema

import (
	"fmt"
	"strings"
	"time"

	"eduhub/internal/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ConvertDates returns a copy of doc with every value under a date path parsed
// into a time.Time. Unparseable values fail with a MalformedInput error.
func ConvertDates(doc interface{}, fields FieldSet) (interface{}, error) {
	if len(fields) == 0 {
		return doc, nil
	}
	return Walk(doc, fields.Has, convertDateValue)
}

func convertDateValue(path string, value interface{}) (interface{}, error) {
	if items, ok := toSlice(value); ok {
		out := make([]interface{}, 0, len(items))
		for _, item := range items {
			t, err := ParseDate(path, item)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
		if _, isA := value.(primitive.A); isA {
			return primitive.A(out), nil
		}
		return out, nil
	}
	return ParseDate(path, value)
}

// ParseDate converts a single date value. Native dates and nil pass through.
func ParseDate(path string, value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v.UTC(), nil
	case primitive.DateTime:
		return v.Time().UTC(), nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), nil
			}
		}
		return nil, apperrors.MalformedInput("ParseDate", fmt.Errorf("field %q: cannot parse %q as a date", path, v))
	}
	return nil, apperrors.MalformedInput("ParseDate", fmt.Errorf("field %q: unsupported date value of type %T", path, value))
}
