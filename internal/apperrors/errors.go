package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

type Kind string

const (
	KindNotFound           Kind = "NotFound"
	KindMalformedInput     Kind = "MalformedInput"
	KindValidationRejected Kind = "ValidationRejected"
	KindBackend            Kind = "BackendError"
)

// documentValidationFailure is the server code for writes rejected by a collection validator.
const documentValidationFailure = 121

// Error carries the kind of a failure together with the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrMalformedInput     = &Error{Kind: KindMalformedInput}
	ErrValidationRejected = &Error{Kind: KindValidationRejected}
	ErrBackend            = &Error{Kind: KindBackend}
)

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works on wrapped values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func NotFound(op string, err error) error       { return New(KindNotFound, op, err) }
func MalformedInput(op string, err error) error { return New(KindMalformedInput, op, err) }
func Backend(op string, err error) error        { return New(KindBackend, op, err) }

// FromMongo classifies a driver error. Validator rejections and duplicate keys are
// ValidationRejected, anything else is BackendError. Already-kinded errors pass through.
func FromMongo(op string, err error) error {
	if err == nil {
		return nil
	}
	var kinded *Error
	if errors.As(err, &kinded) {
		return err
	}
	if mongo.IsDuplicateKeyError(err) || hasServerCode(err, documentValidationFailure) {
		return New(KindValidationRejected, op, err)
	}
	return New(KindBackend, op, err)
}

func hasServerCode(err error, code int) bool {
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorCode(code)
	}
	return false
}

// KindOf returns the kind of err, BackendError for unclassified errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var kinded *Error
	if errors.As(err, &kinded) {
		return kinded.Kind
	}
	return KindBackend
}

func HTTPStatus(err error) uint {
	switch KindOf(err) {
	case "":
		return http.StatusOK
	case KindNotFound:
		return http.StatusNotFound
	case KindMalformedInput:
		return http.StatusBadRequest
	case KindValidationRejected:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
