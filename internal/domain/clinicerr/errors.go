package clinicerr

import "errors"

// Sentinels para clasificar con errors.Is sin depender del tipo concreto.
var (
	ErrReference    = errors.New("reference error")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

type Kind string

const (
	// KindReference: el caller mandó una FK colgante (owner_id, pet_id, service_ids).
	KindReference Kind = "reference"
	// KindNotFound: no existe la entidad objetivo de la operación.
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
	KindConflict     Kind = "conflict"
)

// Error es el error de dominio que cruza hasta la capa HTTP.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is permite errors.Is(err, ErrReference) y compañía.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return sentinelFor(e.Kind) == target
}

func sentinelFor(k Kind) error {
	switch k {
	case KindReference:
		return ErrReference
	case KindNotFound:
		return ErrNotFound
	case KindInvalidInput:
		return ErrInvalidInput
	case KindConflict:
		return ErrConflict
	default:
		return nil
	}
}

func Reference(msg string) error {
	return &Error{Kind: KindReference, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func InvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

func Conflict(msg string, cause error) error {
	return &Error{Kind: KindConflict, Msg: msg, Err: cause}
}

// KindOf devuelve el Kind del primer *Error en la cadena, o "" si no hay.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
