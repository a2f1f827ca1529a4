package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base holds the document id. It is assigned client-side so the id of an
// inserted record is known without reading it back.
type Base struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
}

func NewBase() Base {
	return Base{
		ID: primitive.NewObjectID(),
	}
}
