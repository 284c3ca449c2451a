package httperr

import "errors"

// Kind classifies a business error. Every kind is deterministic and is
// never retried.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindAuthorization Kind = "authorization"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func newBusiness(kind Kind, code string, message []string) error {
	be := BusinessError{Kind: kind, Code: code}
	if len(message) > 0 {
		be.Message = message[0]
	}
	return be
}

// ErrBusiness is a validation failure.
func ErrBusiness(code string, message ...string) error {
	return newBusiness(KindValidation, code, message)
}

func ErrValidation(code string, message ...string) error {
	return newBusiness(KindValidation, code, message)
}

func ErrNotFound(code string, message ...string) error {
	return newBusiness(KindNotFound, code, message)
}

func ErrConflict(code string, message ...string) error {
	return newBusiness(KindConflict, code, message)
}

func ErrAuthorization(code string, message ...string) error {
	return newBusiness(KindAuthorization, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns the kind of a business error and false for any other error.
func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
