package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"eduhub/internal/apperrors"

	"go.mongodb.org/mongo-driver/bson"
)

// CollectionSchema is one entry of the validator file: a collection and the
// validator document attached to it on creation.
type CollectionSchema struct {
	Name      string
	Validator bson.D
}

// Schemas keeps validator entries in file order.
type Schemas []CollectionSchema

func (s Schemas) Lookup(name string) (bson.D, bool) {
	for _, cs := range s {
		if cs.Name == name {
			return cs.Validator, true
		}
	}
	return nil, false
}

func (s Schemas) Names() []string {
	names := make([]string, 0, len(s))
	for _, cs := range s {
		names = append(names, cs.Name)
	}
	return names
}

// LoadSchemas reads a mapping of collection name to validator document.
// An invalid file yields no schemas at all.
func LoadSchemas(path string) (Schemas, error) {
	root, err := readDocument("LoadSchemas", path)
	if err != nil {
		return nil, err
	}

	schemas := make(Schemas, 0, len(root))
	for _, elem := range root {
		validator, ok := toD(elem.Value)
		if !ok {
			return nil, apperrors.MalformedInput("LoadSchemas", fmt.Errorf("validator for %q in %s is not a document", elem.Key, path))
		}
		schemas = append(schemas, CollectionSchema{Name: elem.Key, Validator: validator})
	}
	return schemas, nil
}

// LoadSampleData reads a mapping of collection name to records. Values are not
// checked here; the seeder decides what to skip.
func LoadSampleData(path string) (bson.D, error) {
	return readDocument("LoadSampleData", path)
}

func readDocument(op, path string) (bson.D, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NotFound(op, fmt.Errorf("file not found: %s", path))
		}
		return nil, apperrors.Backend(op, fmt.Errorf("failed to read %s: %w", path, err))
	}

	// Relaxed extended JSON keeps int/double distinctions that validators check.
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, apperrors.MalformedInput(op, fmt.Errorf("invalid JSON in %s: %w", path, err))
	}
	return doc, nil
}
