package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("seeding users: %w", MalformedInput("ParseDate", errors.New("bad date")))

	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, KindMalformedInput, KindOf(err))
	assert.Contains(t, err.Error(), "ParseDate: MalformedInput: bad date")
}

func TestFromMongo(t *testing.T) {
	validation := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121, Message: "Document failed validation"}}}
	duplicate := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"validator rejection", validation, ErrValidationRejected},
		{"duplicate key", duplicate, ErrValidationRejected},
		{"command error", mongo.CommandError{Code: 8000, Message: "boom"}, ErrBackend},
		{"plain error", errors.New("connection reset"), ErrBackend},
		{"already kinded", NotFound("Load", errors.New("missing")), ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMongo("op", tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
	assert.NoError(t, FromMongo("op", nil))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, uint(http.StatusOK), HTTPStatus(nil))
	assert.Equal(t, uint(http.StatusNotFound), HTTPStatus(NotFound("op", nil)))
	assert.Equal(t, uint(http.StatusBadRequest), HTTPStatus(MalformedInput("op", nil)))
	assert.Equal(t, uint(http.StatusUnprocessableEntity), HTTPStatus(New(KindValidationRejected, "op", nil)))
	assert.Equal(t, uint(http.StatusInternalServerError), HTTPStatus(errors.New("x")))
}
