package httperr

import "errors"

// Kind classifies a business failure so the transport layer can pick a
// response code without inspecting individual error codes.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindSlotUnavailable Kind = "slot_unavailable"
	KindNotFound        Kind = "not_found"
	KindInvalidState    Kind = "invalid_state"
	KindForbidden       Kind = "forbidden"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func ErrSlotUnavailable(code, message string) error {
	return BusinessError{Kind: KindSlotUnavailable, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrInvalidState(code, message string) error {
	return BusinessError{Kind: KindInvalidState, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
